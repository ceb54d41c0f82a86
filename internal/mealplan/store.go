package mealplan

import (
	"context"
	"encoding/json"

	"recipebook/internal/domain"
	"recipebook/internal/logger"
	"recipebook/internal/metrics"
)

// CollectionKey is the fixed document key the whole meal plan
// collection lives under.
const CollectionKey = "mealPlans"

// Store persists the meal plan collection as one JSON document keyed
// by week start date. Storage failures never propagate: every
// operation degrades to a safe default (absent or false) and logs the
// cause. A nil backend turns every operation into a no-op, covering
// execution contexts without durable storage.
type Store struct {
	backend Backend
}

// NewStore creates a store over the given backend. backend may be nil.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// loadAll reads the whole collection. Missing and corrupt documents
// both load as an empty collection.
func (s *Store) loadAll(ctx context.Context) domain.MealPlanCollection {
	log := logger.FromContext(ctx)

	if s.backend == nil {
		return domain.MealPlanCollection{}
	}

	data, ok, err := s.backend.Get(ctx, CollectionKey)
	if err != nil {
		log.Error("Failed to load meal plans", "error", err)
		return domain.MealPlanCollection{}
	}
	if !ok {
		return domain.MealPlanCollection{}
	}

	var collection domain.MealPlanCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		log.Error("Corrupt meal plan document, treating as empty", "error", err)
		return domain.MealPlanCollection{}
	}
	if collection == nil {
		collection = domain.MealPlanCollection{}
	}
	return collection
}

// saveAll writes the whole collection back.
func (s *Store) saveAll(ctx context.Context, collection domain.MealPlanCollection) bool {
	log := logger.FromContext(ctx)

	if s.backend == nil {
		return false
	}

	data, err := json.Marshal(collection)
	if err != nil {
		log.Error("Failed to serialize meal plans", "error", err)
		return false
	}
	if err := s.backend.Set(ctx, CollectionKey, data); err != nil {
		log.Error("Failed to save meal plans", "error", err)
		return false
	}
	return true
}

// LoadWeek returns the stored plan for weekKey, or (nil, false) when
// absent or unreadable.
func (s *Store) LoadWeek(ctx context.Context, weekKey string) (*domain.WeekPlan, bool) {
	plan, ok := s.loadAll(ctx)[weekKey]
	if !ok || plan == nil {
		return nil, false
	}
	return plan.Clone(), true
}

// SaveWeek stores the plan under weekKey. The stored copy always gets
// weekStartDate stamped to weekKey, overwriting any mismatch: the
// store is the source of truth for key consistency.
func (s *Store) SaveWeek(ctx context.Context, weekKey string, plan *domain.WeekPlan) bool {
	if s.backend == nil || plan == nil {
		return false
	}

	collection := s.loadAll(ctx)
	stored := plan.Clone()
	stored.WeekStartDate = weekKey
	collection[weekKey] = stored

	if !s.saveAll(ctx, collection) {
		return false
	}
	metrics.MealPlansSaved.Inc()
	return true
}

// DeleteWeek removes the plan for weekKey. Deleting an absent week
// still reports success.
func (s *Store) DeleteWeek(ctx context.Context, weekKey string) bool {
	if s.backend == nil {
		return false
	}

	collection := s.loadAll(ctx)
	delete(collection, weekKey)
	return s.saveAll(ctx, collection)
}

// ClearAll removes the entire collection document.
func (s *Store) ClearAll(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	if s.backend == nil {
		return false
	}
	if err := s.backend.Delete(ctx, CollectionKey); err != nil {
		log.Error("Failed to clear meal plans", "error", err)
		return false
	}
	return true
}

// AllPlans returns the full persisted collection.
func (s *Store) AllPlans(ctx context.Context) domain.MealPlanCollection {
	collection := s.loadAll(ctx)
	out := make(domain.MealPlanCollection, len(collection))
	for key, plan := range collection {
		out[key] = plan.Clone()
	}
	return out
}
