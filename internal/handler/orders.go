package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.Checkout(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("order_number", order.OrderNumber).Int64("total_cents", order.TotalCents).Msg("order placed")

	utils.WriteJSON(w, models.CheckoutResponse{
		OrderNumber: order.OrderNumber,
		TotalCents:  order.TotalCents,
		PrepMinutes: order.PrepMinutes,
	}, http.StatusCreated)
}

// listOwnOrders serves the caller's order history, newest first.
func (h *Handler) listOwnOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	orders, err := h.services.OrderService.ListOrders(r.Context(), models.OrderFilter{UserID: userID})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, orders, http.StatusOK)
}

// listOrders serves the staff order board with optional status/date/active
// filters from the query string.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.OrderFilter{
		Status:     models.OrderStatus(query.Get("status")),
		Date:       query.Get("date"),
		ActiveOnly: query.Get("active") == "true",
	}

	orders, err := h.services.OrderService.ListOrders(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	orderID, err := pathID(r, "orderID")
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), orderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// customers may only read their own orders
	if !h.callerIsStaff(r) && order.UserID != userID {
		utils.WriteJSONError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

// getOrderByNumber serves public order tracking: anyone holding the
// number from the receipt can check progress, no account needed.
func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.WriteJSONError(w, "invalid order number", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	orderID, err := pathID(r, "orderID")
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.UpdateStatus(r.Context(), orderID, req.Status, userID, req.Notes)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, order, http.StatusOK)
}

// cancelOrder answers POST /api/orders/{orderID}/cancel. Customers may only
// cancel their own orders; the lifecycle check in the service layer limits
// cancellation to pending and confirmed orders.
func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	orderID, err := pathID(r, "orderID")
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.services.OrderService.GetOrder(r.Context(), orderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if !h.callerIsStaff(r) && order.UserID != userID {
		utils.WriteJSONError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	cancelled, err := h.services.OrderService.UpdateStatus(r.Context(), orderID, models.OrderStatusCancelled, userID, "cancelled by customer")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cancelled, http.StatusOK)
}

func (h *Handler) orderStatusHistory(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderID")
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	history, err := h.services.OrderService.StatusHistory(r.Context(), orderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, history, http.StatusOK)
}

// callerIsStaff reports whether the authenticated caller holds the staff or
// manager role.
func (h *Handler) callerIsStaff(r *http.Request) bool {
	role, ok := utils.GetRoleFromContext(r.Context())
	return ok && (role == models.RoleStaff || role == models.RoleManager)
}
