package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recipebook/internal/domain"
	"recipebook/internal/logger"
	"recipebook/internal/recipe"
)

// RecipeHandler proxies recipe lookups to the CMS client so the
// planner UI never talks to the CMS directly.
type RecipeHandler struct {
	fetcher recipe.Fetcher
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(fetcher recipe.Fetcher) *RecipeHandler {
	return &RecipeHandler{fetcher: fetcher}
}

// HandleGetRecipe returns one recipe by document id.
func (h *RecipeHandler) HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	documentID := chi.URLParam(r, "documentId")
	if documentID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}

	rec, err := h.fetcher.FetchByID(r.Context(), documentID)
	if err != nil {
		log.Error("Recipe lookup failed", "documentId", documentID, "error", err)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgRecipeNotFound)
			return
		}
		respondError(w, http.StatusBadGateway, ErrMsgRecipeFetchFailed)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: rec})
}
