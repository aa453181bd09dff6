package config

import "time"

const defaultPort = "8000"

// defaults is merged last, so every field here is only applied when no
// other source provided a value.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "dinehall",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			MealPassExpiryInterval: time.Hour,
			StaleOrderInterval:     10 * time.Minute,
			StaleOrderAge:          2 * time.Hour,
		},
		Kitchen: Kitchen{
			ServerURL:       "http://localhost:" + defaultPort,
			RefreshInterval: 5 * time.Second,
			RequestTimeout:  10 * time.Second,
		},
	}
}
