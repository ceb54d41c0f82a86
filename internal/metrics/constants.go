package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "recipebook_http_requests_total"
	MetricNameHTTPRequestDuration  = "recipebook_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "recipebook_http_requests_in_flight"

	MetricNameMealPlansSaved        = "recipebook_meal_plans_saved_total"
	MetricNameSlotsAssigned         = "recipebook_meal_slots_assigned_total"
	MetricNameSlotsUnassigned       = "recipebook_meal_slots_unassigned_total"
	MetricNameShoppingListsBuilt    = "recipebook_shopping_lists_generated_total"
	MetricNameShoppingListBuildTime = "recipebook_shopping_list_generation_seconds"
	MetricNameRecipeFetches         = "recipebook_recipe_fetches_total"
	MetricNameRecipeCacheHits       = "recipebook_recipe_cache_hits_total"
	MetricNameRecipeCacheMisses     = "recipebook_recipe_cache_misses_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextMealPlansSaved        = "Total number of week plans written to storage"
	HelpTextSlotsAssigned         = "Total number of meal slot assignments"
	HelpTextSlotsUnassigned       = "Total number of meal slot removals"
	HelpTextShoppingListsBuilt    = "Total number of shopping list generation runs"
	HelpTextShoppingListBuildTime = "Shopping list generation latency in seconds"
	HelpTextRecipeFetches         = "Total number of recipe lookups against the CMS"
	HelpTextRecipeCacheHits       = "Total number of recipe cache hits"
	HelpTextRecipeCacheMisses     = "Total number of recipe cache misses"
)

// Label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelOutcome  = "outcome"
	LabelMealType = "meal_type"
)

// Label values for recipe fetch outcomes
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
