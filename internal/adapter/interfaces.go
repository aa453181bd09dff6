// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer the kitchen display client
// uses to talk to the dinehall server.
//
// The primary abstraction is [ServerAdapter], which decouples the display
// logic from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/dinehall/dinehall/models"
)

// ServerAdapter defines transport-agnostic communication with the dinehall
// server for the kitchen display. Implementations are responsible for
// serialisation, bearer token management, and mapping transport-level errors
// to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates a staff or manager account and stores the returned
	// bearer token via SetToken. Returns the authenticated user record so
	// the display can show who is signed in and reject customer accounts.
	Login(ctx context.Context, login, password string) (models.User, error)

	// Tickets fetches the active kitchen tickets, urgent orders first.
	Tickets(ctx context.Context) ([]models.KitchenTicket, error)

	// Summary fetches the per-status counts for the board header.
	Summary(ctx context.Context) (models.KitchenSummary, error)

	// UpdateOrderStatus advances an order's lifecycle state. Returns
	// [ErrConflict] (wrapped) when the transition is not allowed from the
	// order's current status.
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (models.Order, error)
}
