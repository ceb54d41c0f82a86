package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/domain"
	"recipebook/internal/handler"
)

type errFetcher struct {
	err error
}

func (f *errFetcher) FetchByID(_ context.Context, _ string) (*domain.Recipe, error) {
	return nil, f.err
}

func serveRecipeRequest(h *handler.RecipeHandler, id string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/api/v1/recipes/{documentId}", h.HandleGetRecipe)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes/"+id, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleGetRecipe(t *testing.T) {
	h := handler.NewRecipeHandler(&stubFetcher{recipes: map[string]*domain.Recipe{
		"abc123": {DocumentID: "abc123", Title: "Pancakes"},
	}})

	rec := serveRecipeRequest(h, "abc123")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data domain.Recipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp.Data.DocumentID)
	assert.Equal(t, "Pancakes", resp.Data.ResolvedTitle())
}

func TestHandleGetRecipeNotFound(t *testing.T) {
	h := handler.NewRecipeHandler(&stubFetcher{})

	rec := serveRecipeRequest(h, "missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetRecipeUpstreamFailure(t *testing.T) {
	h := handler.NewRecipeHandler(&errFetcher{err: errors.New("connection refused")})

	rec := serveRecipeRequest(h, "abc123")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
