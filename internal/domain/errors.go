package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe errors
	ErrMsgRecipeNotFound   = "recipe not found"
	ErrMsgInvalidRecipe    = "recipe is missing an id"
	ErrMsgRecipeFetch      = "failed to fetch recipe"

	// Meal plan errors
	ErrMsgInvalidDay      = "invalid day key"
	ErrMsgInvalidMealType = "invalid meal type"
	ErrMsgNoActiveWeek    = "no active week"

	// Date errors
	ErrMsgInvalidDate = "invalid date"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe  = errors.New(ErrMsgInvalidRecipe)
	ErrRecipeFetch    = errors.New(ErrMsgRecipeFetch)

	// Meal plan errors
	ErrInvalidDay      = errors.New(ErrMsgInvalidDay)
	ErrInvalidMealType = errors.New(ErrMsgInvalidMealType)
	ErrNoActiveWeek    = errors.New(ErrMsgNoActiveWeek)

	// Date errors
	ErrInvalidDate = errors.New(ErrMsgInvalidDate)
)
