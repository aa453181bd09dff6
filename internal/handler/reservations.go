package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// reservationAvailability answers GET /api/reservations/availability with
// the tables free for ?date=YYYY-MM-DD&time=HH:MM&party_size=N.
func (h *Handler) reservationAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	partySize, err := strconv.Atoi(query.Get("party_size"))
	if err != nil {
		utils.WriteJSONError(w, "invalid party size", http.StatusBadRequest)
		return
	}

	tables, err := h.services.ReservationService.Availability(r.Context(), query.Get("date"), query.Get("time"), partySize)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, tables, http.StatusOK)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reservation, err := h.services.ReservationService.CreateReservation(r.Context(), userID, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusCreated)
}

func (h *Handler) getReservationByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	reservation, err := h.services.ReservationService.GetByCode(r.Context(), code)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusOK)
}

func (h *Handler) listReservationsForDate(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.services.ReservationService.ListForDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservations, http.StatusOK)
}

// cancelReservation answers DELETE /api/reservations/{code}. Customers may
// only cancel their own bookings; staff may cancel any.
func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	code := chi.URLParam(r, "code")

	reservation, err := h.services.ReservationService.GetByCode(r.Context(), code)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if !h.callerIsStaff(r) && reservation.UserID != userID {
		utils.WriteJSONError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	cancelled, err := h.services.ReservationService.UpdateStatus(r.Context(), code, models.ReservationCancelled)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, cancelled, http.StatusOK)
}

// updateReservationStatusRequest is the body of
// PATCH /api/reservations/{code}/status.
type updateReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status"`
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req updateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reservation, err := h.services.ReservationService.UpdateStatus(r.Context(), code, req.Status)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, reservation, http.StatusOK)
}
