// Package shoppinglist derives a week's shopping list from its meal
// plan by fetching every planned recipe and aggregating the
// ingredients.
package shoppinglist

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"recipebook/internal/domain"
	"recipebook/internal/ingredient"
	"recipebook/internal/logger"
	"recipebook/internal/metrics"
	"recipebook/internal/recipe"
)

// PlanSource supplies the currently active week plan. The meal plan
// service satisfies this.
type PlanSource interface {
	CurrentPlan() *domain.WeekPlan
}

// Snapshot is the externally visible generator state.
type Snapshot struct {
	ShoppingList []domain.AggregatedIngredient `json:"shoppingList"`
	IsLoading    bool                          `json:"isLoading"`
	Error        string                        `json:"error,omitempty"`
}

// Service turns the active week plan into an aggregated shopping
// list. Each generation run fetches every distinct recipe exactly
// once, concurrently, and only publishes once all fetches have
// resolved, so fetch completion order never changes the result. Runs
// are tagged with a generation counter; a run superseded by a newer
// one discards its result instead of publishing stale data.
type Service struct {
	fetcher recipe.Fetcher
	plans   PlanSource

	mu         sync.Mutex
	generation uint64
	list       []domain.AggregatedIngredient
	isLoading  bool
	errMsg     string
}

// NewService creates a shopping list service reading plans from plans
// and recipes from fetcher.
func NewService(fetcher recipe.Fetcher, plans PlanSource) *Service {
	return &Service{
		fetcher: fetcher,
		plans:   plans,
		list:    []domain.AggregatedIngredient{},
	}
}

// Snapshot returns the current generator state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.AggregatedIngredient, len(s.list))
	copy(list, s.list)
	return Snapshot{
		ShoppingList: list,
		IsLoading:    s.isLoading,
		Error:        s.errMsg,
	}
}

// Refresh re-runs the whole pipeline against the currently bound plan
// and returns the published snapshot.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	return s.Generate(ctx, s.plans.CurrentPlan())
}

// Generate builds the shopping list for the given plan. An absent plan
// or a plan without meals clears the list immediately with no network
// activity.
func (s *Service) Generate(ctx context.Context, plan *domain.WeekPlan) Snapshot {
	log := logger.FromContext(ctx)
	start := time.Now()

	s.mu.Lock()
	s.generation++
	run := s.generation
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()

	if plan == nil || len(plan.Meals) == 0 {
		return s.publish(ctx, run, []domain.AggregatedIngredient{}, nil)
	}

	counts := plan.RecipeCounts()
	ids := orderedRecipeIDs(plan)

	// Fan out one fetch per distinct recipe. Per-recipe failures are
	// isolated: the recipe is skipped and the rest still populate the
	// list.
	recipes := make([]*domain.Recipe, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			rec, err := s.fetcher.FetchByID(gctx, id)
			if err != nil {
				log.Error("Failed to fetch recipe for shopping list", "recipeId", id, "error", err)
				return nil
			}
			recipes[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return s.publish(ctx, run, []domain.AggregatedIngredient{}, err)
	}
	if err := ctx.Err(); err != nil {
		return s.publish(ctx, run, []domain.AggregatedIngredient{}, err)
	}

	// Replicate each recipe's ingredients by how many slots it fills,
	// then aggregate the flat list.
	var flat []domain.IngredientEntry
	for i, rec := range recipes {
		if rec == nil {
			continue
		}
		list := rec.IngredientList()
		if len(list) == 0 {
			continue
		}
		for n := 0; n < counts[ids[i]]; n++ {
			flat = append(flat, list...)
		}
	}

	snapshot := s.publish(ctx, run, ingredient.Aggregate(flat), nil)
	metrics.ShoppingListGenerationDuration.Observe(time.Since(start).Seconds())
	return snapshot
}

// publish installs a run's result unless a newer run has started in
// the meantime, in which case the stale result is dropped.
func (s *Service) publish(ctx context.Context, run uint64, list []domain.AggregatedIngredient, err error) Snapshot {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if run != s.generation {
		log.Debug("Discarding superseded shopping list run", "run", run, "current", s.generation)
		return Snapshot{ShoppingList: s.list, IsLoading: s.isLoading, Error: s.errMsg}
	}

	s.isLoading = false
	if err != nil {
		log.Error("Shopping list generation failed", "error", err)
		s.errMsg = err.Error()
		s.list = []domain.AggregatedIngredient{}
		metrics.ShoppingListsGenerated.WithLabelValues(metrics.OutcomeError).Inc()
	} else {
		s.errMsg = ""
		s.list = list
		metrics.ShoppingListsGenerated.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	out := make([]domain.AggregatedIngredient, len(s.list))
	copy(out, s.list)
	return Snapshot{ShoppingList: out, IsLoading: s.isLoading, Error: s.errMsg}
}

// orderedRecipeIDs returns the distinct recipe ids of a plan in a
// stable first-appearance order: days in week order, the default meal
// types first within a day, any extra meal types after them in sorted
// order.
func orderedRecipeIDs(plan *domain.WeekPlan) []string {
	seen := make(map[string]bool)
	var ids []string

	appendSlot := func(slot *domain.MealSlotAssignment) {
		if slot == nil || slot.RecipeID == "" || seen[slot.RecipeID] {
			return
		}
		seen[slot.RecipeID] = true
		ids = append(ids, slot.RecipeID)
	}

	for _, day := range domain.DayKeys {
		meals := plan.Meals[day]
		if meals == nil {
			continue
		}
		for _, mealType := range domain.MealTypes {
			appendSlot(meals[mealType])
		}

		var extra []string
		for mealType := range meals {
			if !domain.IsMealType(mealType) {
				extra = append(extra, mealType)
			}
		}
		sort.Strings(extra)
		for _, mealType := range extra {
			appendSlot(meals[mealType])
		}
	}

	return ids
}
