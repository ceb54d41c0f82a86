package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipebook/internal/domain"
	"recipebook/internal/handler"
	"recipebook/internal/mealplan"
	"recipebook/internal/recipe"
	"recipebook/internal/shoppinglist"
)

type staticFetcher struct{}

func (staticFetcher) FetchByID(_ context.Context, id string) (*domain.Recipe, error) {
	if id == "known" {
		return &domain.Recipe{DocumentID: "known", Title: "Stew"}, nil
	}
	return nil, domain.ErrRecipeNotFound
}

type noopPurger struct{}

func (noopPurger) Purge() {}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	handler.InitValidator()

	planSvc := mealplan.NewService(mealplan.NewStore(mealplan.NewMemoryBackend()))
	var fetcher recipe.Fetcher = staticFetcher{}

	return NewServer(Options{
		Port:             0,
		PlanService:      planSvc,
		ListService:      shoppinglist.NewService(fetcher, planSvc),
		RecipeFetcher:    fetcher,
		CachePurger:      noopPurger{},
		RevalidateSecret: "s3cret",
	})
}

func TestServerRouting(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"Healthz", "GET", "/healthz", http.StatusOK},
		{"Metrics", "GET", "/metrics", http.StatusOK},
		{"Get plan", "GET", "/api/v1/mealplan?week=2024-01-15", http.StatusOK},
		{"Week navigation", "GET", "/api/v1/mealplan/week?date=2024-01-15", http.StatusOK},
		{"Shopping list", "GET", "/api/v1/shoppinglist?week=2024-01-15", http.StatusOK},
		{"Known recipe", "GET", "/api/v1/recipes/known", http.StatusOK},
		{"Unknown recipe", "GET", "/api/v1/recipes/missing", http.StatusNotFound},
		{"Revalidate bad secret", "POST", "/api/v1/revalidate?secret=wrong", http.StatusUnauthorized},
		{"Revalidate good secret", "POST", "/api/v1/revalidate?secret=s3cret", http.StatusOK},
		{"Unknown route", "GET", "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.httpServer.Handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestServerSecurityHeadersApplied(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("expected nosniff header on every response, got %q", got)
	}

	var resp handler.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("healthz body is not JSON: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwarded      string
		trustedProxies []string
		expected       string
	}{
		{
			name:       "Direct connection",
			remoteAddr: "203.0.113.7:4321",
			expected:   "203.0.113.7",
		},
		{
			name:           "Forwarded header from untrusted source is ignored",
			remoteAddr:     "203.0.113.7:4321",
			forwarded:      "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "203.0.113.7",
		},
		{
			name:           "Forwarded header from trusted proxy is used",
			remoteAddr:     "10.0.0.1:4321",
			forwarded:      "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.1",
		},
		{
			name:           "Rightmost forwarded entry wins",
			remoteAddr:     "10.0.0.1:4321",
			forwarded:      "198.51.100.1, 198.51.100.2",
			trustedProxies: []string{"10.0.0.1"},
			expected:       "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}

			if got := extractIP(req, tt.trustedProxies); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
