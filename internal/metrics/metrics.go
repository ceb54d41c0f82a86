package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Meal plan metrics
var (
	MealPlansSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMealPlansSaved,
			Help: HelpTextMealPlansSaved,
		},
	)

	SlotsAssigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSlotsAssigned,
			Help: HelpTextSlotsAssigned,
		},
		[]string{LabelMealType},
	)

	SlotsUnassigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSlotsUnassigned,
			Help: HelpTextSlotsUnassigned,
		},
		[]string{LabelMealType},
	)
)

// Shopping list metrics
var (
	ShoppingListsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsBuilt,
			Help: HelpTextShoppingListsBuilt,
		},
		[]string{LabelOutcome},
	)

	ShoppingListGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListBuildTime,
			Help:    HelpTextShoppingListBuildTime,
			Buckets: HTTPLatencyBuckets,
		},
	)
)

// Recipe collaborator metrics
var (
	RecipeFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeFetches,
			Help: HelpTextRecipeFetches,
		},
		[]string{LabelOutcome},
	)

	RecipeCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheHits,
			Help: HelpTextRecipeCacheHits,
		},
	)

	RecipeCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecipeCacheMisses,
			Help: HelpTextRecipeCacheMisses,
		},
	)
)
