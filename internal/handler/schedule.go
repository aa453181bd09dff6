package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

func (h *Handler) createStaffProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.StaffProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ScheduleService.CreateProfile(r.Context(), profile)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listStaffProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ScheduleService.ListProfiles(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) createShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var template models.ShiftTemplate
	if err := json.NewDecoder(r.Body).Decode(&template); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ScheduleService.CreateTemplate(r.Context(), template)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.services.ScheduleService.ListTemplates(r.Context(), r.URL.Query().Get("active") == "true")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, templates, http.StatusOK)
}

func (h *Handler) createShift(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	var shift models.Shift
	if err := json.NewDecoder(r.Body).Decode(&shift); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	shift.CreatedBy = userID

	created, err := h.services.ScheduleService.CreateShift(r.Context(), shift)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

// listShifts serves GET /api/schedule/shifts?from=...&to=...&profile_id=N.
func (h *Handler) listShifts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var profileID int64
	if raw := query.Get("profile_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			utils.WriteJSONError(w, "invalid profile id", http.StatusBadRequest)
			return
		}
		profileID = id
	}

	shifts, err := h.services.ScheduleService.ListShifts(r.Context(), profileID, query.Get("from"), query.Get("to"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, shifts, http.StatusOK)
}

// listOwnShifts serves GET /api/staff/shifts?from=...&to=... with the
// shifts of the staff profile linked to the caller's account.
func (h *Handler) listOwnShifts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	shifts, err := h.services.ScheduleService.ListShiftsForUser(r.Context(), userID, query.Get("from"), query.Get("to"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, shifts, http.StatusOK)
}

// updateShiftStatusRequest is the body of
// PATCH /api/schedule/shifts/{shiftID}/status.
type updateShiftStatusRequest struct {
	Status models.ShiftStatus `json:"status"`
}

func (h *Handler) updateShiftStatus(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "shiftID")

	var req updateShiftStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ScheduleService.UpdateShiftStatus(r.Context(), shiftID, req.Status); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// publishDayResponse is the body of POST /api/schedule/shifts/publish.
type publishDayResponse struct {
	Date      string `json:"date"`
	Published int64  `json:"published"`
}

// publishDay serves POST /api/schedule/shifts/publish?date=YYYY-MM-DD,
// publishing every draft shift on the date in one go.
func (h *Handler) publishDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	published, err := h.services.ScheduleService.PublishDay(r.Context(), date)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, publishDayResponse{Date: date, Published: published}, http.StatusOK)
}

// laborCostResponse is the body of GET /api/schedule/labor-cost.
type laborCostResponse struct {
	FromDate       string `json:"from"`
	ToDate         string `json:"to"`
	TotalCostCents int64  `json:"total_cost_cents"`
}

func (h *Handler) laborCost(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from, to := query.Get("from"), query.Get("to")

	total, err := h.services.ScheduleService.LaborCost(r.Context(), from, to)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, laborCostResponse{FromDate: from, ToDate: to, TotalCostCents: total}, http.StatusOK)
}
