// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(carts *mockCartRepository, menu *mockMenuRepository) CartService {
	return NewCartService(carts, menu, logger.NewLogger("test", false))
}

func availableMenuItem() *mockMenuRepository {
	return &mockMenuRepository{
		getItemFn: func(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
			return models.MenuItem{MenuItemID: menuItemID, Name: "Pad Thai", PriceCents: 1250, Available: true}, nil
		},
	}
}

func TestAddItem_SnapshotsNameAndPrice(t *testing.T) {
	carts := &mockCartRepository{}
	svc := newTestCartService(carts, availableMenuItem())

	cart, err := svc.AddItem(context.Background(), 5, models.AddCartItemRequest{MenuItemID: 3, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Pad Thai", cart.Items[0].Name)
	assert.Equal(t, int64(1250), cart.Items[0].PriceCents)
	assert.Equal(t, int64(2500), cart.ItemsTotalCents)
	require.NotNil(t, carts.saved, "cart should be persisted")
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	carts := &mockCartRepository{
		getFn: func(ctx context.Context, userID int64) (models.Cart, error) {
			return models.Cart{
				UserID: userID,
				Items:  []models.CartItem{{MenuItemID: 3, Name: "Pad Thai", PriceCents: 1250, Quantity: 1}},
			}, nil
		},
	}
	svc := newTestCartService(carts, availableMenuItem())

	cart, err := svc.AddItem(context.Background(), 5, models.AddCartItemRequest{MenuItemID: 3, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(3750), cart.ItemsTotalCents)
}

func TestAddItem_UnavailableItemRejected(t *testing.T) {
	menu := &mockMenuRepository{
		getItemFn: func(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
			return models.MenuItem{MenuItemID: menuItemID, Available: false}, nil
		},
	}
	svc := newTestCartService(&mockCartRepository{}, menu)

	_, err := svc.AddItem(context.Background(), 5, models.AddCartItemRequest{MenuItemID: 3, Quantity: 1})
	require.ErrorIs(t, err, ErrItemUnavailable)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	svc := newTestCartService(&mockCartRepository{}, availableMenuItem())

	_, err := svc.AddItem(context.Background(), 5, models.AddCartItemRequest{MenuItemID: 3, Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSetItem_ZeroQuantityRemovesLine(t *testing.T) {
	carts := &mockCartRepository{
		getFn: func(ctx context.Context, userID int64) (models.Cart, error) {
			return models.Cart{
				UserID: userID,
				Items: []models.CartItem{
					{MenuItemID: 3, Name: "Pad Thai", PriceCents: 1250, Quantity: 2},
					{MenuItemID: 4, Name: "Green Curry", PriceCents: 1450, Quantity: 1},
				},
			}, nil
		},
	}
	svc := newTestCartService(carts, availableMenuItem())

	cart, err := svc.SetItem(context.Background(), 5, models.SetCartItemRequest{MenuItemID: 3, Quantity: 0})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(4), cart.Items[0].MenuItemID)
	assert.Equal(t, int64(1450), cart.ItemsTotalCents)
}

func TestSetItem_UnknownLineRejected(t *testing.T) {
	carts := &mockCartRepository{
		getFn: func(ctx context.Context, userID int64) (models.Cart, error) {
			return models.Cart{
				UserID: userID,
				Items:  []models.CartItem{{MenuItemID: 4, Name: "Green Curry", PriceCents: 1450, Quantity: 1}},
			}, nil
		},
	}
	svc := newTestCartService(carts, availableMenuItem())

	_, err := svc.SetItem(context.Background(), 5, models.SetCartItemRequest{MenuItemID: 3, Quantity: 2})
	require.ErrorIs(t, err, ErrCartItemNotFound)
	assert.Nil(t, carts.saved, "a missing line must not touch the stored cart")
}

func TestSetItem_UpdatesQuantity(t *testing.T) {
	carts := &mockCartRepository{
		getFn: func(ctx context.Context, userID int64) (models.Cart, error) {
			return models.Cart{
				UserID: userID,
				Items:  []models.CartItem{{MenuItemID: 3, Name: "Pad Thai", PriceCents: 1250, Quantity: 2}},
			}, nil
		},
	}
	svc := newTestCartService(carts, availableMenuItem())

	cart, err := svc.SetItem(context.Background(), 5, models.SetCartItemRequest{MenuItemID: 3, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, int64(6250), cart.ItemsTotalCents)
}
