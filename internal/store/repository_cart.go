package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// cartRepository keeps one cart row per user in the "carts" table with the
// line items serialized to JSONB. A user with no row simply has an empty
// cart.
type cartRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCartRepository constructs a [CartRepository] backed by the provided
// database connection and logger.
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		db:     db,
		logger: logger,
	}
}

// GetCart returns the user's cart. A user without a cart row gets an empty
// cart, not an error.
func (r *cartRepository) GetCart(ctx context.Context, userID int64) (models.Cart, error) {
	log := logger.FromContext(ctx)

	var cart models.Cart
	var items []byte

	row := r.db.QueryRowContext(ctx, getCart, userID)
	if err := row.Scan(&cart.UserID, &items, &cart.ItemsTotalCents); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cart{UserID: userID}, nil
		}
		log.Err(err).Str("func", "*cartRepository.GetCart").Msg("error: scanning error")
		return models.Cart{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &cart.Items); err != nil {
			log.Err(err).Str("func", "*cartRepository.GetCart").Msg("error decoding cart items")
			return models.Cart{}, fmt.Errorf("error decoding cart items: %w", err)
		}
	}

	return cart, nil
}

// SaveCart upserts the user's cart row.
func (r *cartRepository) SaveCart(ctx context.Context, cart models.Cart) error {
	log := logger.FromContext(ctx)

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("error encoding cart items: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, saveCart, cart.UserID, items, cart.ItemsTotalCents); err != nil {
		log.Err(err).Str("func", "*cartRepository.SaveCart").Msg("error executing upsert")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// ClearCart removes the user's cart row. Clearing an absent cart is a no-op.
func (r *cartRepository) ClearCart(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearCart, userID); err != nil {
		log.Err(err).Str("func", "*cartRepository.ClearCart").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
