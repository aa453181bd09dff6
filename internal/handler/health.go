package handler

import (
	"net/http"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
	"github.com/dinehall/dinehall/models"
)

// health answers the platform health check on the bare root path. The
// response always carries HTTP 200 as long as the process is up; the
// "database" field reports connectivity separately so a degraded deploy is
// visible without being restarted in a loop.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	dbStatus := "ok"
	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("health check: database unreachable")
		dbStatus = "unreachable"
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:   "ok",
		Service:  "dinehall",
		Version:  h.app.Version,
		Database: dbStatus,
	}, http.StatusOK)
}
