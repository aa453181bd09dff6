// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/adapter"
	"github.com/dinehall/dinehall/internal/config"
	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/tui"
)

// App is the kitchen display application: a server adapter plus the
// terminal UI driving it.
type App struct {
	adapter adapter.ServerAdapter
	tui     *tui.TUI
	logger  *logger.Logger
}

// NewApp loads configuration and wires the display components. The display
// logs to a file next to the executable so log lines do not corrupt the
// full-screen UI.
func NewApp() (*App, error) {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewKitchenLogger("dinehall-kitchen", cfg.App.Debug)
	log.Debug().Any("kitchen", cfg.Kitchen).Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Kitchen, log)
	if err != nil {
		log.Err(err).Msg("error creating server adapter")
		return nil, err
	}

	ui := tui.New(serverAdapter, cfg.Kitchen.RefreshInterval, log)

	return &App{adapter: serverAdapter, tui: ui, logger: log}, nil
}

// Run implements [Client]. It drives the display session and treats an
// operator quit as a clean exit.
func (a *App) Run() error {
	a.logger.Info().Msg("kitchen display starting")

	err := a.tui.Run(context.Background())
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("kitchen display closed by operator")
		return nil
	}
	if err != nil {
		a.logger.Err(err).Msg("kitchen display terminated")
	}
	return err
}
