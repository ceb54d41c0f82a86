package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recipebook/internal/handler"
	"recipebook/internal/logger"
	"recipebook/internal/mealplan"
	"recipebook/internal/metrics"
	"recipebook/internal/recipe"
	"recipebook/internal/shoppinglist"
)

// Options carries the wiring for NewServer
type Options struct {
	Port             int
	TrustedProxies   []string
	PlanService      mealplan.Service
	ListService      *shoppinglist.Service
	RecipeFetcher    recipe.Fetcher
	CachePurger      handler.CachePurger
	RevalidateSecret string
}

type Server struct {
	httpServer  *http.Server
	planService mealplan.Service
	listService *shoppinglist.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Meal plan routes
		planHandler := handler.NewMealPlanHandler(opts.PlanService)
		r.Route("/mealplan", func(r chi.Router) {
			r.Get("/", planHandler.HandleGetPlan)
			r.Delete("/", planHandler.HandleClearWeek)
			r.Post("/assign", planHandler.HandleAssign)
			r.Post("/unassign", planHandler.HandleUnassign)
			r.Get("/week", planHandler.HandleGetWeek)
		})

		// Shopping list routes
		listHandler := handler.NewShoppingListHandler(opts.PlanService, opts.ListService)
		r.Route("/shoppinglist", func(r chi.Router) {
			r.Get("/", listHandler.HandleGetShoppingList)
			r.Post("/refresh", listHandler.HandleRefresh)
		})

		// Recipe routes
		recipeHandler := handler.NewRecipeHandler(opts.RecipeFetcher)
		r.Get("/recipes/{documentId}", recipeHandler.HandleGetRecipe)

		// CMS cache revalidation
		r.Post("/revalidate", handler.HandleRevalidate(opts.RevalidateSecret, opts.CachePurger))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		planService: opts.PlanService,
		listService: opts.ListService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", sanitizeQuery(r.URL.Query()),
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// sanitizeQuery redacts sensitive query parameters before logging
func sanitizeQuery(query url.Values) string {
	sanitized := make(url.Values, len(query))
	for k, v := range query {
		redact := false
		for _, sensitive := range SensitiveQueryParams {
			if strings.EqualFold(k, sensitive) {
				redact = true
				break
			}
		}
		if redact {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized.Encode()
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
