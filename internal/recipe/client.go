// Package recipe talks to the headless CMS that owns recipe content.
// The rest of the application treats it as a black box keyed by
// document id.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"recipebook/internal/domain"
	"recipebook/internal/logger"
	"recipebook/internal/metrics"
)

// Fetcher is the recipe lookup surface the rest of the application
// consumes; tests substitute fakes.
type Fetcher interface {
	FetchByID(ctx context.Context, documentID string) (*domain.Recipe, error)
}

// Client fetches recipes from the CMS and caches them with a bounded
// TTL so repeated shopping list generations do not hammer the CMS.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	cache      *expirable.LRU[string, *domain.Recipe]
}

// Options configures the client cache and transport.
type Options struct {
	CacheSize  int
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

const (
	defaultCacheSize = 256
	defaultCacheTTL  = 24 * time.Hour
	defaultTimeout   = 10 * time.Second
)

// NewClient creates a CMS client. endpoint is the recipe collection
// URL; token is sent as a bearer token on every request.
func NewClient(endpoint, token string, opts Options) *Client {
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: opts.HTTPClient,
		cache:      expirable.NewLRU[string, *domain.Recipe](opts.CacheSize, nil, opts.CacheTTL),
	}
}

// FetchByID returns the full recipe record for a document id, from
// cache when fresh.
func (c *Client) FetchByID(ctx context.Context, documentID string) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	if documentID == "" {
		return nil, fmt.Errorf("%w: empty document id", domain.ErrInvalidRecipe)
	}

	if cached, ok := c.cache.Get(documentID); ok {
		metrics.RecipeCacheHits.Inc()
		return cached, nil
	}
	metrics.RecipeCacheMisses.Inc()

	url := fmt.Sprintf("%s/%s?populate=*", c.endpoint, documentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecipeFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w %s: %w", domain.ErrRecipeFetch, documentID, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		metrics.RecipeFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, documentID)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		metrics.RecipeFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w %s: status %d", domain.ErrRecipeFetch, documentID, res.StatusCode)
	}

	var envelope domain.RecipeEnvelope
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		metrics.RecipeFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w %s: decoding response: %w", domain.ErrRecipeFetch, documentID, err)
	}
	if envelope.Data == nil {
		metrics.RecipeFetches.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, documentID)
	}

	metrics.RecipeFetches.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Debug("Recipe fetched from CMS", "documentId", documentID)

	c.cache.Add(documentID, envelope.Data)
	return envelope.Data, nil
}

// Purge drops every cached recipe. Exposed through the revalidation
// endpoint so content edits in the CMS become visible immediately.
func (c *Client) Purge() {
	c.cache.Purge()
}

// CacheLen reports how many recipes are currently cached.
func (c *Client) CacheLen() int {
	return c.cache.Len()
}
