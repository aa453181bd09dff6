package handler

import (
	"net/http"

	"github.com/dinehall/dinehall/internal/utils"
)

func (h *Handler) kitchenTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.services.KitchenService.Tickets(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, tickets, http.StatusOK)
}

func (h *Handler) kitchenSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.KitchenService.Summary(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, summary, http.StatusOK)
}
