package handler

import (
	"net/http"
	"time"

	"recipebook/internal/dateutil"
	"recipebook/internal/domain"
	"recipebook/internal/ingredient"
	"recipebook/internal/logger"
	"recipebook/internal/mealplan"
	"recipebook/internal/shoppinglist"
)

// ShoppingListResponse is the generated list for one week. The list is
// sorted for display; Lines carries the ready-to-render strings.
type ShoppingListResponse struct {
	WeekStartDate string                        `json:"weekStartDate"`
	ShoppingList  []domain.AggregatedIngredient `json:"shoppingList"`
	Lines         []string                      `json:"lines"`
	IsLoading     bool                          `json:"isLoading"`
	Error         string                        `json:"error,omitempty"`
}

// RefreshShoppingListRequest asks for a regeneration of a week's list.
type RefreshShoppingListRequest struct {
	Week string `json:"week" validate:"required"`
}

// ShoppingListHandler handles shopping list HTTP requests
type ShoppingListHandler struct {
	planSvc mealplan.Service
	listSvc *shoppinglist.Service
}

// NewShoppingListHandler creates a new shopping list handler
func NewShoppingListHandler(planSvc mealplan.Service, listSvc *shoppinglist.Service) *ShoppingListHandler {
	return &ShoppingListHandler{planSvc: planSvc, listSvc: listSvc}
}

func (h *ShoppingListHandler) respondSnapshot(w http.ResponseWriter, snap shoppinglist.Snapshot) {
	sorted := ingredient.Sort(snap.ShoppingList)
	lines := make([]string, len(sorted))
	for i, ing := range sorted {
		lines[i] = ingredient.Format(ing)
	}

	respondJSON(w, http.StatusOK, ShoppingListResponse{
		WeekStartDate: h.planSvc.ActiveWeek(),
		ShoppingList:  sorted,
		Lines:         lines,
		IsLoading:     snap.IsLoading,
		Error:         snap.Error,
	})
}

func (h *ShoppingListHandler) generateForWeek(w http.ResponseWriter, r *http.Request, week string) {
	log := logger.FromContext(r.Context())

	if week == "" {
		week = dateutil.Format(time.Now().UTC())
	}
	if err := h.planSvc.SetWeek(r.Context(), week); err != nil {
		log.Warn("Rejecting invalid week", "week", week, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWeek)
		return
	}

	snap := h.listSvc.Generate(r.Context(), h.planSvc.CurrentPlan())
	h.respondSnapshot(w, snap)
}

// HandleGetShoppingList generates and returns the shopping list for a
// week. Failed recipe lookups produce a partial list, not an error.
func (h *ShoppingListHandler) HandleGetShoppingList(w http.ResponseWriter, r *http.Request) {
	h.generateForWeek(w, r, GetOptionalQueryParam(r, "week", ""))
}

// HandleRefresh re-runs the generation pipeline for a week on demand.
func (h *ShoppingListHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshShoppingListRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Refresh shopping list"); err != nil {
		return
	}
	h.generateForWeek(w, r, req.Week)
}
