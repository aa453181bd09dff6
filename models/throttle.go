package models

import "time"

// LoginThrottle tracks consecutive failed login attempts per login so the
// auth service can impose an increasing cooldown between attempts.
type LoginThrottle struct {
	Login        string    `json:"login"`
	FailCount    int       `json:"fail_count"`
	LastFailedAt time.Time `json:"last_failed_at"`
}
