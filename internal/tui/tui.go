// SPDX-License-Identifier: Apache-2.0

// Package tui implements the terminal kitchen display board. Staff sign in
// on the login screen, then watch the live ticket board: active orders
// urgent-first, overdue tickets highlighted, refreshed on a timer.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dinehall/dinehall/internal/adapter"
	"github.com/dinehall/dinehall/internal/logger"
)

// ErrUserQuit is returned by Run when the operator quits the display.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter adapter.ServerAdapter
	refresh time.Duration
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, refresh time.Duration, logger *logger.Logger) *TUI {
	if refresh <= 0 {
		refresh = 10 * time.Second
	}
	return &TUI{adapter: serverAdapter, refresh: refresh, logger: logger}
}

// Run drives the full display session: login screen first, then the ticket
// board until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.adapter),
		"board": NewBoardModel(ctx, t.adapter, t.refresh),
	}

	root := NewRootModel(pages, "login")
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
