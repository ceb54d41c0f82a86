package handler

import (
	"errors"
	"net/http"
	"time"

	"recipebook/internal/dateutil"
	"recipebook/internal/domain"
	"recipebook/internal/logger"
	"recipebook/internal/mealplan"
)

// AssignMealRequest represents the request to put a recipe into a meal slot.
// Omitting the recipe clears the slot.
type AssignMealRequest struct {
	Week     string         `json:"week" validate:"required"`
	Day      string         `json:"day" validate:"required,daykey"`
	MealType string         `json:"meal_type" validate:"required,mealtype"`
	Recipe   *domain.Recipe `json:"recipe,omitempty"`
}

// UnassignMealRequest represents the request to remove one meal slot.
type UnassignMealRequest struct {
	Week     string `json:"week" validate:"required"`
	Day      string `json:"day" validate:"required,daykey"`
	MealType string `json:"meal_type" validate:"required,mealtype"`
}

// WeekPlanResponse is the plan payload for one week.
type WeekPlanResponse struct {
	WeekStartDate string           `json:"weekStartDate"`
	Plan          *domain.WeekPlan `json:"plan"`
}

// MealPlanHandler handles meal plan HTTP requests
type MealPlanHandler struct {
	planSvc mealplan.Service
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(planSvc mealplan.Service) *MealPlanHandler {
	return &MealPlanHandler{planSvc: planSvc}
}

// activateWeek switches the service to the requested week. The week
// parameter accepts any date inside the week; it defaults to today.
func (h *MealPlanHandler) activateWeek(w http.ResponseWriter, r *http.Request, week string) bool {
	if week == "" {
		week = dateutil.Format(time.Now().UTC())
	}
	if err := h.planSvc.SetWeek(r.Context(), week); err != nil {
		logger.FromContext(r.Context()).Warn("Rejecting invalid week", "week", week, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWeek)
		return false
	}
	return true
}

// HandleGetPlan returns the plan for a week. A week with nothing
// planned responds with a null plan rather than an error.
func (h *MealPlanHandler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	week := GetOptionalQueryParam(r, "week", "")
	if !h.activateWeek(w, r, week) {
		return
	}

	respondJSON(w, http.StatusOK, WeekPlanResponse{
		WeekStartDate: h.planSvc.ActiveWeek(),
		Plan:          h.planSvc.CurrentPlan(),
	})
}

// HandleAssign puts a recipe into a meal slot, or clears the slot when
// no recipe is supplied.
func (h *MealPlanHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req AssignMealRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assign meal"); err != nil {
		return
	}
	if !h.activateWeek(w, r, req.Week) {
		return
	}

	if err := h.planSvc.Assign(r.Context(), req.Day, req.MealType, req.Recipe); err != nil {
		log.Error("Assign failed", "error", err, "day", req.Day, "mealType", req.MealType)
		if errors.Is(err, domain.ErrInvalidRecipe) {
			respondError(w, http.StatusBadRequest, ErrMsgRecipeMissingID)
			return
		}
		respondError(w, http.StatusInternalServerError, ErrMsgAssignFailed)
		return
	}

	respondJSON(w, http.StatusOK, WeekPlanResponse{
		WeekStartDate: h.planSvc.ActiveWeek(),
		Plan:          h.planSvc.CurrentPlan(),
	})
}

// HandleUnassign removes one meal slot.
func (h *MealPlanHandler) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req UnassignMealRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unassign meal"); err != nil {
		return
	}
	if !h.activateWeek(w, r, req.Week) {
		return
	}

	if err := h.planSvc.Unassign(r.Context(), req.Day, req.MealType); err != nil {
		log.Error("Unassign failed", "error", err, "day", req.Day, "mealType", req.MealType)
		respondError(w, http.StatusInternalServerError, ErrMsgUnassignFailed)
		return
	}

	respondJSON(w, http.StatusOK, WeekPlanResponse{
		WeekStartDate: h.planSvc.ActiveWeek(),
		Plan:          h.planSvc.CurrentPlan(),
	})
}

// HandleClearWeek deletes the whole plan for a week.
func (h *MealPlanHandler) HandleClearWeek(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	week, ok := GetQueryParam(r, w, "week")
	if !ok {
		return
	}
	if !h.activateWeek(w, r, week) {
		return
	}

	if err := h.planSvc.ClearWeek(r.Context()); err != nil {
		log.Error("Clear week failed", "error", err, "week", week)
		respondError(w, http.StatusInternalServerError, ErrMsgClearWeekFailed)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Week cleared"})
}

// WeekNavigationResponse describes a week and its neighbours for
// planner navigation.
type WeekNavigationResponse struct {
	WeekStartDate string   `json:"weekStartDate"`
	Display       string   `json:"display"`
	Days          []string `json:"days"`
	PreviousWeek  string   `json:"previousWeek"`
	NextWeek      string   `json:"nextWeek"`
}

// HandleGetWeek returns the seven dates and prev/next keys for a week,
// for the planner's week navigation strip.
func (h *MealPlanHandler) HandleGetWeek(w http.ResponseWriter, r *http.Request) {
	date := GetOptionalQueryParam(r, "date", dateutil.Format(time.Now().UTC()))

	weekKey, err := dateutil.WeekKeyFromString(date)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWeek)
		return
	}

	dates, err := dateutil.WeekDates(weekKey)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidWeek)
		return
	}
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = dateutil.Format(d)
	}

	prev, _ := dateutil.PreviousWeek(weekKey)
	next, _ := dateutil.NextWeek(weekKey)

	monday, _ := dateutil.Parse(weekKey)
	respondJSON(w, http.StatusOK, WeekNavigationResponse{
		WeekStartDate: weekKey,
		Display:       dateutil.FormatDisplay(monday, dateutil.DisplayOptions{ShortMonth: true}),
		Days:          days,
		PreviousWeek:  prev,
		NextWeek:      next,
	})
}
