package handler

import (
	"net/http"
	"strconv"

	"github.com/dinehall/dinehall/internal/utils"
)

func (h *Handler) analyticsDaily(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AnalyticsService.DailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) analyticsTopItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.WriteJSONError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := h.services.AnalyticsService.TopItems(r.Context(), query.Get("from"), query.Get("to"), limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) analyticsStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	breakdown, err := h.services.AnalyticsService.StatusBreakdown(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, breakdown, http.StatusOK)
}
