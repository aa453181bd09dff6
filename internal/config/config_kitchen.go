package config

import (
	"fmt"
	"time"
)

// KitchenClient holds network settings used by the kitchen display to talk
// to the dinehall API.
type KitchenClient struct {
	// ServerURL is the base URL of the dinehall API.
	ServerURL string
	// RefreshInterval defines how often the ticket board polls the server.
	RefreshInterval time.Duration
	// RequestTimeout is the default timeout for outbound API requests.
	RequestTimeout time.Duration
}

// KitchenConfig is the top-level kitchen display configuration assembled
// from [StructuredConfig]. The kitchen display is a pure API client, so it
// carries no storage or server settings.
type KitchenConfig struct {
	// Kitchen contains the API client settings.
	Kitchen KitchenClient
	// Debug enables verbose logging in the display client.
	Debug bool
	// Version is the application version string.
	Version string
}

// GetKitchenConfig builds and validates a kitchen-display-specific config
// view from the merged structured configuration.
//
// Unlike [GetStructuredConfig], it skips the server-side validation rules
// (database DSN, secret key): the display client only needs to know where
// the API lives and how often to poll it.
func GetKitchenConfig() (*KitchenConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	kitchenCfg := &KitchenConfig{
		Kitchen: KitchenClient{
			ServerURL:       cfg.Kitchen.ServerURL,
			RefreshInterval: cfg.Kitchen.RefreshInterval,
			RequestTimeout:  cfg.Kitchen.RequestTimeout,
		},
		Debug:   cfg.App.Debug,
		Version: cfg.App.Version,
	}

	return kitchenCfg, kitchenCfg.validate()
}
