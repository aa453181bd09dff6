package handler

import (
	"errors"
	"net/http"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/service"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTooManyLoginAttempts:    http.StatusTooManyRequests,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrEmptyCart:                http.StatusBadRequest,
	service.ErrItemUnavailable:          http.StatusConflict,
	service.ErrCartItemNotFound:         http.StatusNotFound,
	service.ErrPaymentNotSupported:      http.StatusBadRequest,
	service.ErrInvalidStatusTransition:  http.StatusConflict,
	service.ErrPhoneRequired:            http.StatusBadRequest,
	service.ErrActiveSubscriptionExists: http.StatusConflict,
	service.ErrSubscriptionNotUsable:    http.StatusConflict,
	service.ErrTableUnavailable:         http.StatusConflict,
	service.ErrShiftOverlap:             http.StatusConflict,

	store.ErrLoginAlreadyExists:        http.StatusConflict,
	store.ErrNoUserWasFound:            http.StatusNotFound,
	store.ErrCategoryNotFound:          http.StatusNotFound,
	store.ErrMenuItemNotFound:          http.StatusNotFound,
	store.ErrOrderNotFound:             http.StatusNotFound,
	store.ErrOrderStatusConflict:       http.StatusConflict,
	store.ErrTableNotFound:             http.StatusNotFound,
	store.ErrReservationNotFound:       http.StatusNotFound,
	store.ErrReservationStatusConflict: http.StatusConflict,
	store.ErrMealPassNotFound:          http.StatusNotFound,
	store.ErrSubscriptionNotFound:      http.StatusNotFound,
	store.ErrSubscriptionExhausted:     http.StatusConflict,
	store.ErrActiveSubscriptionExists:  http.StatusConflict,
	store.ErrTableSlotTaken:            http.StatusConflict,
	store.ErrShiftNotFound:             http.StatusNotFound,
	store.ErrProfileNotFound:           http.StatusNotFound,
	store.ErrShiftStatusConflict:       http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps a service/store error onto an HTTP status and writes the
// uniform JSON error body. Unmapped errors become opaque 500s so driver
// detail never leaks to clients.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	} else {
		log.Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, message, status)
}
