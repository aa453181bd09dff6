package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

func (h *Handler) listMealPassPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.services.MealPassService.ListPlans(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, plans, http.StatusOK)
}

// purchaseMealPassRequest is the body of POST /api/mealpass/purchase.
type purchaseMealPassRequest struct {
	PassID        string               `json:"pass_id"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

func (h *Handler) purchaseMealPass(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req purchaseMealPassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	sub, err := h.services.MealPassService.Purchase(r.Context(), userID, req.PassID, req.PaymentMethod)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, sub, http.StatusCreated)
}

// mealPassDashboardResponse joins the active subscription with its usage
// history for the account page.
type mealPassDashboardResponse struct {
	Subscription models.MealPassSubscription `json:"subscription"`
	Usage        []models.MealPassUsage      `json:"usage"`
}

func (h *Handler) mealPassDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	sub, usage, err := h.services.MealPassService.Dashboard(r.Context(), userID)
	if err != nil {
		// no active pass is an empty dashboard, not an error page
		if errors.Is(err, store.ErrSubscriptionNotFound) {
			utils.WriteJSON(w, mealPassDashboardResponse{}, http.StatusOK)
			return
		}
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, mealPassDashboardResponse{Subscription: sub, Usage: usage}, http.StatusOK)
}

func (h *Handler) listMealPassSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	subs, err := h.services.MealPassService.ListSubscriptions(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, subs, http.StatusOK)
}

func (h *Handler) redeemMealPass(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.RedeemMealPassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.MealPassService.Redeem(r.Context(), userID, req.OrderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}
