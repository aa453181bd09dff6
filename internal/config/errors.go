package config

import "errors"

// Validation errors returned when required configuration values are
// incomplete or invalid.
var (
	// ErrMissingDatabaseDSN indicates the DATABASE_URL connection string
	// was not provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required (set DATABASE_URL)")
	// ErrMissingSecretKey indicates the token signing secret was not
	// provided by any configuration source.
	ErrMissingSecretKey = errors.New("secret key is required (set SECRET_KEY)")
	// ErrMissingAllowedHosts indicates the host allowlist is empty while
	// debug mode is off.
	ErrMissingAllowedHosts = errors.New("allowed hosts are required in production (set ALLOWED_HOSTS)")
	// ErrInvalidKitchenConfigs indicates invalid kitchen display client
	// settings (for example, missing server URL or zero refresh interval).
	ErrInvalidKitchenConfigs = errors.New("invalid kitchen configuration")
)
