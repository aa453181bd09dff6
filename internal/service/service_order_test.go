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

func newTestOrderService(orders *mockOrderRepository, carts *mockCartRepository, menu *mockMenuRepository) OrderService {
	return NewOrderService(orders, carts, menu, logger.NewLogger("test", false))
}

func cartWithPadThai(userID int64) *mockCartRepository {
	return &mockCartRepository{
		getFn: func(ctx context.Context, id int64) (models.Cart, error) {
			return models.Cart{
				UserID: userID,
				Items: []models.CartItem{
					{MenuItemID: 3, Name: "Pad Thai", PriceCents: 1000, Quantity: 2},
					{MenuItemID: 4, Name: "Green Curry", PriceCents: 1450, Quantity: 1},
				},
			}, nil
		},
	}
}

func liveMenu() *mockMenuRepository {
	return &mockMenuRepository{
		getItemFn: func(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
			switch menuItemID {
			case 3:
				// price raised since the cart snapshot was taken
				return models.MenuItem{MenuItemID: 3, Name: "Pad Thai", PriceCents: 1250, Available: true, PrepMinutes: 15}, nil
			case 4:
				return models.MenuItem{MenuItemID: 4, Name: "Green Curry", PriceCents: 1450, Available: true, PrepMinutes: 20}, nil
			}
			return models.MenuItem{}, ErrItemUnavailable
		},
	}
}

func TestCheckout_RepricesCartAgainstLiveMenu(t *testing.T) {
	var created models.Order
	orders := &mockOrderRepository{
		createFn: func(ctx context.Context, order models.Order) (models.Order, error) {
			created = order
			order.OrderID = 42
			order.OrderNumber = "ORD0042"
			return order, nil
		},
	}
	svc := newTestOrderService(orders, cartWithPadThai(5), liveMenu())

	order, err := svc.Checkout(context.Background(), 5, models.CheckoutRequest{
		CustomerName:  "John",
		PaymentMethod: models.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD0042", order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	// 2×1250 (live price, not the 1000 snapshot) + 1450
	assert.Equal(t, int64(3950), created.TotalCents)
	// prep time is the max of the item estimates
	assert.Equal(t, 20, created.PrepMinutes)
	assert.Len(t, created.Items, 2)
	assert.Equal(t, int64(1250), created.Items[0].PriceCents)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := newTestOrderService(&mockOrderRepository{}, &mockCartRepository{}, liveMenu())

	_, err := svc.Checkout(context.Background(), 5, models.CheckoutRequest{
		CustomerName:  "John",
		PaymentMethod: models.PaymentCash,
	})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_CashOnly(t *testing.T) {
	svc := newTestOrderService(&mockOrderRepository{}, cartWithPadThai(5), liveMenu())

	for _, payment := range []models.PaymentMethod{models.PaymentCard, models.PaymentOnline, ""} {
		_, err := svc.Checkout(context.Background(), 5, models.CheckoutRequest{
			CustomerName:  "John",
			PaymentMethod: payment,
		})
		assert.ErrorIs(t, err, ErrPaymentNotSupported, "payment method %q should be rejected", payment)
	}
}

func TestCheckout_UnavailableItemAborts(t *testing.T) {
	menu := &mockMenuRepository{
		getItemFn: func(ctx context.Context, menuItemID int64) (models.MenuItem, error) {
			return models.MenuItem{MenuItemID: menuItemID, Name: "Pad Thai", PriceCents: 1250, Available: false}, nil
		},
	}
	svc := newTestOrderService(&mockOrderRepository{}, cartWithPadThai(5), menu)

	_, err := svc.Checkout(context.Background(), 5, models.CheckoutRequest{
		CustomerName:  "John",
		PaymentMethod: models.PaymentCash,
	})
	require.ErrorIs(t, err, ErrItemUnavailable)
}

func TestCheckout_MissingCustomerName(t *testing.T) {
	svc := newTestOrderService(&mockOrderRepository{}, cartWithPadThai(5), liveMenu())

	_, err := svc.Checkout(context.Background(), 5, models.CheckoutRequest{PaymentMethod: models.PaymentCash})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	orders := &mockOrderRepository{
		getByIDFn: func(ctx context.Context, orderID int64) (models.Order, error) {
			return models.Order{OrderID: orderID, OrderNumber: "ORD0042", Status: models.OrderStatusPending}, nil
		},
	}
	svc := newTestOrderService(orders, &mockCartRepository{}, &mockMenuRepository{})

	order, err := svc.UpdateStatus(context.Background(), 42, models.OrderStatusConfirmed, 9, "")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	orders := &mockOrderRepository{
		getByIDFn: func(ctx context.Context, orderID int64) (models.Order, error) {
			return models.Order{OrderID: orderID, Status: models.OrderStatusReady}, nil
		},
	}
	svc := newTestOrderService(orders, &mockCartRepository{}, &mockMenuRepository{})

	// ready → cancelled is not in the lifecycle
	_, err := svc.UpdateStatus(context.Background(), 42, models.OrderStatusCancelled, 9, "")
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatus_CompletedIsTerminal(t *testing.T) {
	orders := &mockOrderRepository{
		getByIDFn: func(ctx context.Context, orderID int64) (models.Order, error) {
			return models.Order{OrderID: orderID, Status: models.OrderStatusCompleted}, nil
		},
	}
	svc := newTestOrderService(orders, &mockCartRepository{}, &mockMenuRepository{})

	for _, next := range []models.OrderStatus{
		models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusPreparing, models.OrderStatusReady, models.OrderStatusCancelled,
	} {
		_, err := svc.UpdateStatus(context.Background(), 42, next, 9, "")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition, "completed → %s should be rejected", next)
	}
}

func TestGetOrderByNumber_NormalisesReceiptFormat(t *testing.T) {
	orders := &mockOrderRepository{
		getByNumberFn: func(_ context.Context, orderNumber string) (models.Order, error) {
			require.Equal(t, "ORD0042", orderNumber)
			return models.Order{OrderNumber: orderNumber}, nil
		},
	}
	svc := newTestOrderService(orders, &mockCartRepository{}, &mockMenuRepository{})

	order, err := svc.GetOrderByNumber(context.Background(), " #ord0042 ")

	require.NoError(t, err)
	assert.Equal(t, "ORD0042", order.OrderNumber)
}
