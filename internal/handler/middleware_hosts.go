package handler

import (
	"net"
	"net/http"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/utils"
)

// checkAllowedHosts enforces the ALLOWED_HOSTS deployment contract: when the
// allowlist is non-empty, requests whose Host header is not on it are
// rejected with HTTP 400 before reaching any handler. The port part of the
// Host header is ignored for the comparison.
func (h *Handler) checkAllowedHosts(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		if hostOnly, _, err := net.SplitHostPort(host); err == nil {
			host = hostOnly
		}

		if !h.app.HostAllowed(host) {
			logger.FromRequest(r).Error().Str("host", r.Host).Msg("host not on allowlist")
			utils.WriteJSONError(w, "host not allowed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
