package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Meal plan error messages
	ErrMsgInvalidWeek        = "Invalid week date"
	ErrMsgAssignFailed       = "Failed to assign meal"
	ErrMsgUnassignFailed     = "Failed to remove meal"
	ErrMsgClearWeekFailed    = "Failed to clear week"
	ErrMsgRecipeMissingID    = "Recipe is missing an id"

	// Shopping list error messages
	ErrMsgShoppingListFailed = "Failed to generate shopping list"

	// Recipe error messages
	ErrMsgRecipeNotFound    = "Recipe not found"
	ErrMsgRecipeFetchFailed = "Failed to fetch recipe"

	// Revalidation error messages
	ErrMsgInvalidSecret = "Invalid secret"
)
