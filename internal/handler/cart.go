package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// callerID extracts the authenticated user's ID placed into the context by
// the auth middleware. A missing ID on an authenticated route is a wiring
// bug, reported as 401 rather than a panic.
func (h *Handler) callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("user id missing from authenticated request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	cart, err := h.services.CartService.GetCart(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.AddItem(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) setCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.SetCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.SetItem(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cart, http.StatusOK)
}

// removeCartItem drops one line from the cart. A set to quantity zero and
// an explicit remove are the same operation.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	itemID, err := pathID(r, "itemID")
	if err != nil {
		utils.WriteJSONError(w, "invalid menu item id", http.StatusBadRequest)
		return
	}

	cart, err := h.services.CartService.SetItem(r.Context(), userID, models.SetCartItemRequest{MenuItemID: itemID, Quantity: 0})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cart, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.CartService.ClearCart(r.Context(), userID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
