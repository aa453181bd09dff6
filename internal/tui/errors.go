package tui

import (
	"errors"
	"strings"

	"github.com/dinehall/dinehall/internal/adapter"
)

var errStaffOnly = errors.New("staff access required")

// humanizeServerError turns transport errors into operator-readable messages.
func humanizeServerError(err error) string {
	switch {
	case errors.Is(err, errStaffOnly):
		return "this account has no kitchen access"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong login or password"
	case isConnectionError(err):
		return "server unavailable, check the connection"
	default:
		return err.Error()
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout")
}
