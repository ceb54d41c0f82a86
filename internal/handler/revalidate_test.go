package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"recipebook/internal/handler"
)

type countingPurger struct {
	calls int
}

func (p *countingPurger) Purge() { p.calls++ }

func TestHandleRevalidate(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		query          string
		expectedStatus int
		expectedPurges int
	}{
		{
			name:           "Correct secret",
			secret:         "s3cret",
			query:          "?secret=s3cret",
			expectedStatus: http.StatusOK,
			expectedPurges: 1,
		},
		{
			name:           "Wrong secret",
			secret:         "s3cret",
			query:          "?secret=wrong",
			expectedStatus: http.StatusUnauthorized,
			expectedPurges: 0,
		},
		{
			name:           "Missing secret",
			secret:         "s3cret",
			query:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedPurges: 0,
		},
		{
			name:           "Secret not configured",
			secret:         "",
			query:          "?secret=",
			expectedStatus: http.StatusUnauthorized,
			expectedPurges: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purger := &countingPurger{}
			h := handler.HandleRevalidate(tt.secret, purger)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/revalidate"+tt.query, nil)
			rec := httptest.NewRecorder()
			h(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedPurges, purger.calls)
		})
	}
}
