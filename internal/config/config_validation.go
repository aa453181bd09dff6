// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	// In production (DEBUG off) an open host allowlist is a misconfiguration.
	if !cfg.App.Debug && len(cfg.App.AllowedHosts) == 0 {
		return ErrMissingAllowedHosts
	}

	return nil
}

// validate checks the subset of configuration the kitchen display client
// needs before connecting to the server.
func (cfg *KitchenConfig) validate() error {
	if cfg.Kitchen.ServerURL == "" {
		return ErrInvalidKitchenConfigs
	}

	if cfg.Kitchen.RefreshInterval == 0 || cfg.Kitchen.RequestTimeout == 0 {
		return ErrInvalidKitchenConfigs
	}

	return nil
}
