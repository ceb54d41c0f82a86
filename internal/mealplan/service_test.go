package mealplan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/domain"
)

func newTestService(t *testing.T) (Service, *Store) {
	t.Helper()
	store := NewStore(NewMemoryBackend())
	svc := NewService(store)
	require.NoError(t, svc.SetWeek(context.Background(), "2024-01-15"))
	return svc, store
}

func TestServiceSetWeekNormalizesDate(t *testing.T) {
	svc := NewService(NewStore(NewMemoryBackend()))

	// A Tuesday activates the week of its Monday.
	require.NoError(t, svc.SetWeek(context.Background(), "2024-01-16"))
	assert.Equal(t, "2024-01-15", svc.ActiveWeek())

	assert.Error(t, svc.SetWeek(context.Background(), "garbage"))
}

func TestServiceAssignCreatesPlanLazily(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	assert.Nil(t, svc.CurrentPlan())

	err := svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{
		DocumentID: "r1",
		Title:      "Lasagna",
	})
	require.NoError(t, err)

	plan := svc.CurrentPlan()
	require.NotNil(t, plan)
	assert.Equal(t, "2024-01-15", plan.WeekStartDate)
	slot := plan.Meals[domain.DayMonday][domain.MealDinner]
	require.NotNil(t, slot)
	assert.Equal(t, "r1", slot.RecipeID)
	assert.Equal(t, "Lasagna", slot.RecipeTitle)

	// Write-through: the store saw the same plan immediately.
	stored, ok := store.LoadWeek(ctx, "2024-01-15")
	require.True(t, ok)
	assert.Equal(t, plan, stored)
}

func TestServiceTitleResolutionPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		recipe *domain.Recipe
		want   string
	}{
		{
			name: "attributes title wins",
			recipe: &domain.Recipe{
				DocumentID:  "r1",
				Attributes:  &domain.RecipeAttributes{Title: "Nested"},
				Title:       "Plain",
				LegacyTitle: "Legacy",
			},
			want: "Nested",
		},
		{
			name: "plain title next",
			recipe: &domain.Recipe{
				DocumentID:  "r1",
				Title:       "Plain",
				LegacyTitle: "Legacy",
			},
			want: "Plain",
		},
		{
			name:   "legacy title last",
			recipe: &domain.Recipe{DocumentID: "r1", LegacyTitle: "Legacy"},
			want:   "Legacy",
		},
		{
			name:   "no title at all",
			recipe: &domain.Recipe{DocumentID: "r1"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, _ := newTestService(t)

			require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealLunch, tt.recipe))
			slot := svc.CurrentPlan().Meals[domain.DayMonday][domain.MealLunch]
			require.NotNil(t, slot)
			assert.Equal(t, tt.want, slot.RecipeTitle)
		})
	}
}

func TestServiceRejectsRecipeWithoutID(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	err := svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{Title: "No ID"})
	assert.ErrorIs(t, err, domain.ErrInvalidRecipe)

	assert.Nil(t, svc.CurrentPlan())
	_, ok := store.LoadWeek(ctx, "2024-01-15")
	assert.False(t, ok, "rejected assign must not write")
}

func TestServiceUnassignRemovesEmptyDay(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Assign(ctx, domain.DayTuesday, domain.MealBreakfast, &domain.Recipe{DocumentID: "r1"}))
	require.NoError(t, svc.Unassign(ctx, domain.DayTuesday, domain.MealBreakfast))

	plan := svc.CurrentPlan()
	require.NotNil(t, plan)
	// The day key is gone entirely, not left as an empty object.
	_, exists := plan.Meals[domain.DayTuesday]
	assert.False(t, exists)
}

func TestServiceUnassignKeepsOtherSlots(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealBreakfast, &domain.Recipe{DocumentID: "r1"}))
	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r2"}))
	require.NoError(t, svc.Unassign(ctx, domain.DayMonday, domain.MealBreakfast))

	plan := svc.CurrentPlan()
	require.NotNil(t, plan.Meals[domain.DayMonday])
	assert.Nil(t, plan.Meals[domain.DayMonday][domain.MealBreakfast])
	assert.NotNil(t, plan.Meals[domain.DayMonday][domain.MealDinner])
}

func TestServiceUnassignAbsentSlotIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, svc.Unassign(ctx, domain.DayFriday, domain.MealLunch))

	assert.Nil(t, svc.CurrentPlan())
	_, ok := store.LoadWeek(ctx, "2024-01-15")
	assert.False(t, ok, "no-op unassign must not write")
}

func TestServiceAssignNilClearsSlot(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r1"}))
	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, nil))

	plan := svc.CurrentPlan()
	require.NotNil(t, plan)
	_, exists := plan.Meals[domain.DayMonday]
	assert.False(t, exists)
}

func TestServiceClearWeek(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r1"}))
	require.NoError(t, svc.ClearWeek(ctx))

	plan := svc.CurrentPlan()
	require.NotNil(t, plan)
	assert.Empty(t, plan.Meals)

	_, ok := store.LoadWeek(ctx, "2024-01-15")
	assert.False(t, ok)
}

func TestServiceSwitchingWeeksReloads(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryBackend())
	svc := NewService(store)

	require.NoError(t, svc.SetWeek(ctx, "2024-01-15"))
	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r1"}))

	require.NoError(t, svc.SetWeek(ctx, "2024-01-22"))
	assert.Nil(t, svc.CurrentPlan())

	require.NoError(t, svc.SetWeek(ctx, "2024-01-15"))
	plan := svc.CurrentPlan()
	require.NotNil(t, plan)
	assert.Equal(t, "r1", plan.Meals[domain.DayMonday][domain.MealDinner].RecipeID)
}

func TestServiceOperationsWithoutActiveWeek(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewStore(NewMemoryBackend()))

	assert.ErrorIs(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r1"}), domain.ErrNoActiveWeek)
	assert.ErrorIs(t, svc.Unassign(ctx, domain.DayMonday, domain.MealDinner), domain.ErrNoActiveWeek)
	assert.ErrorIs(t, svc.ClearWeek(ctx), domain.ErrNoActiveWeek)
}

func TestServiceCurrentPlanIsACopy(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	require.NoError(t, svc.Assign(ctx, domain.DayMonday, domain.MealDinner, &domain.Recipe{DocumentID: "r1"}))

	plan := svc.CurrentPlan()
	plan.Meals[domain.DayMonday][domain.MealDinner].RecipeID = "tampered"

	assert.Equal(t, "r1", svc.CurrentPlan().Meals[domain.DayMonday][domain.MealDinner].RecipeID)
}
