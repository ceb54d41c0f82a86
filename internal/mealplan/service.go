package mealplan

import (
	"context"
	"sync"

	"recipebook/internal/dateutil"
	"recipebook/internal/domain"
	"recipebook/internal/logger"
	"recipebook/internal/metrics"
)

// Service defines the interface for meal plan operations. One service
// instance holds exactly one active week at a time; switching weeks
// reloads from the store.
type Service interface {
	// SetWeek activates the week containing date (any ISO date string)
	// and loads its plan from the store.
	SetWeek(ctx context.Context, date string) error
	// ActiveWeek returns the active week key, empty before SetWeek.
	ActiveWeek() string
	// Assign writes a recipe into the (day, mealType) slot. A nil
	// recipe clears the slot.
	Assign(ctx context.Context, day, mealType string, recipe *domain.Recipe) error
	// Unassign removes the (day, mealType) slot; no-op when absent.
	Unassign(ctx context.Context, day, mealType string) error
	// CurrentPlan returns the in-memory plan, nil when nothing has
	// been assigned for the active week.
	CurrentPlan() *domain.WeekPlan
	// ClearWeek resets the active week and deletes it from the store.
	ClearWeek(ctx context.Context) error
}

type service struct {
	store *Store

	mu      sync.Mutex
	weekKey string
	plan    *domain.WeekPlan
}

// NewService creates a meal plan service over the given store.
func NewService(store *Store) Service {
	return &service{store: store}
}

func (s *service) SetWeek(ctx context.Context, date string) error {
	weekKey, err := dateutil.WeekKeyFromString(date)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.weekKey == weekKey {
		return nil
	}

	s.weekKey = weekKey
	plan, ok := s.store.LoadWeek(ctx, weekKey)
	if !ok {
		plan = nil
	}
	s.plan = plan

	logger.FromContext(ctx).Debug("Active week changed", "week", weekKey, "loaded", ok)
	return nil
}

func (s *service) ActiveWeek() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.weekKey
}

func (s *service) Assign(ctx context.Context, day, mealType string, recipe *domain.Recipe) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.weekKey == "" {
		return domain.ErrNoActiveWeek
	}

	// Guard against malformed upstream data: a recipe without an id is
	// rejected and the plan stays untouched.
	if recipe != nil && recipe.DocumentID == "" {
		log.Error("Invalid recipe passed to Assign", "day", day, "mealType", mealType)
		return domain.ErrInvalidRecipe
	}

	var slot *domain.MealSlotAssignment
	if recipe != nil {
		slot = &domain.MealSlotAssignment{
			RecipeID:    recipe.DocumentID,
			RecipeTitle: recipe.ResolvedTitle(),
		}
	}

	s.mutate(ctx, day, mealType, slot)

	if recipe != nil {
		metrics.SlotsAssigned.WithLabelValues(mealType).Inc()
	}
	return nil
}

func (s *service) Unassign(ctx context.Context, day, mealType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.weekKey == "" {
		return domain.ErrNoActiveWeek
	}
	if s.plan == nil || s.plan.Meals[day] == nil || s.plan.Meals[day][mealType] == nil {
		return nil
	}

	s.mutate(ctx, day, mealType, nil)
	metrics.SlotsUnassigned.WithLabelValues(mealType).Inc()
	return nil
}

// mutate is the single mutation path: merge the slot value in, run the
// same normalize pass whether the net effect is an add or a remove,
// then write through to the store. Callers hold s.mu.
func (s *service) mutate(ctx context.Context, day, mealType string, slot *domain.MealSlotAssignment) {
	if s.plan == nil {
		s.plan = domain.NewWeekPlan(s.weekKey)
	}
	if s.plan.Meals == nil {
		s.plan.Meals = make(map[string]domain.DayPlan)
	}
	if s.plan.Meals[day] == nil {
		s.plan.Meals[day] = make(domain.DayPlan)
	}

	s.plan.Meals[day][mealType] = slot
	s.plan.Normalize()

	// Write-through: the in-memory plan is authoritative immediately;
	// a failed save is logged by the store and does not roll back.
	s.store.SaveWeek(ctx, s.weekKey, s.plan)
}

func (s *service) CurrentPlan() *domain.WeekPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

func (s *service) ClearWeek(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.weekKey == "" {
		return domain.ErrNoActiveWeek
	}

	s.plan = domain.NewWeekPlan(s.weekKey)
	s.store.DeleteWeek(ctx, s.weekKey)
	return nil
}
