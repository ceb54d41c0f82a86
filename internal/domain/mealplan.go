package domain

// Day name keys used in WeekPlan.Meals. Always lowercase English day names.
const (
	DayMonday    = "monday"
	DayTuesday   = "tuesday"
	DayWednesday = "wednesday"
	DayThursday  = "thursday"
	DayFriday    = "friday"
	DaySaturday  = "saturday"
	DaySunday    = "sunday"
)

// Default meal type keys. The set is open-ended; these four are the
// defined defaults the planner UI exposes.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnacks    = "snacks"
)

// DayKeys lists the seven day name keys in week order (Monday first).
var DayKeys = []string{
	DayMonday, DayTuesday, DayWednesday, DayThursday,
	DayFriday, DaySaturday, DaySunday,
}

// MealTypes lists the default meal type keys.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// IsDayKey reports whether s is one of the seven day name keys.
func IsDayKey(s string) bool {
	for _, d := range DayKeys {
		if s == d {
			return true
		}
	}
	return false
}

// IsMealType reports whether s is one of the default meal type keys.
func IsMealType(s string) bool {
	for _, m := range MealTypes {
		if s == m {
			return true
		}
	}
	return false
}

// MealSlotAssignment identifies one recipe occupying one meal slot.
// RecipeTitle is display copy captured at assignment time and is not
// kept in sync with later recipe edits.
type MealSlotAssignment struct {
	RecipeID    string `json:"recipeId"`
	RecipeTitle string `json:"recipeTitle"`
}

// DayPlan maps a meal type key to its assignment. An empty slot is
// represented by the key being absent, never by a nil placeholder; the
// meal plan service prunes nil entries after every mutation.
type DayPlan map[string]*MealSlotAssignment

// WeekPlan holds the meal assignments for one week, keyed by day name.
type WeekPlan struct {
	WeekStartDate string             `json:"weekStartDate"`
	Meals         map[string]DayPlan `json:"meals"`
}

// NewWeekPlan returns an empty plan for the given week key.
func NewWeekPlan(weekKey string) *WeekPlan {
	return &WeekPlan{
		WeekStartDate: weekKey,
		Meals:         make(map[string]DayPlan),
	}
}

// Clone returns a deep copy of the plan. The store hands out clones so
// callers cannot mutate the at-rest collection through shared maps.
func (p *WeekPlan) Clone() *WeekPlan {
	if p == nil {
		return nil
	}
	out := NewWeekPlan(p.WeekStartDate)
	for day, meals := range p.Meals {
		dayCopy := make(DayPlan, len(meals))
		for mealType, slot := range meals {
			if slot == nil {
				continue
			}
			s := *slot
			dayCopy[mealType] = &s
		}
		out.Meals[day] = dayCopy
	}
	return out
}

// Normalize removes nil slot entries and deletes any day left with zero
// slots. Every mutation path runs through this before the plan is
// persisted or exposed.
func (p *WeekPlan) Normalize() {
	if p == nil {
		return
	}
	for day, meals := range p.Meals {
		for mealType, slot := range meals {
			if slot == nil {
				delete(meals, mealType)
			}
		}
		if len(meals) == 0 {
			delete(p.Meals, day)
		}
	}
}

// RecipeCounts returns how many slots each recipe occupies across the
// whole week. A recipe assigned to three slots counts three times.
func (p *WeekPlan) RecipeCounts() map[string]int {
	counts := make(map[string]int)
	if p == nil {
		return counts
	}
	for _, meals := range p.Meals {
		for _, slot := range meals {
			if slot != nil && slot.RecipeID != "" {
				counts[slot.RecipeID]++
			}
		}
	}
	return counts
}

// MealPlanCollection is the entire persisted meal plan state, keyed by
// week start date.
type MealPlanCollection map[string]*WeekPlan
