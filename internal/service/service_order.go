package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/internal/store"
	"github.com/dinehall/dinehall/models"
)

// orderService is the concrete implementation of OrderService. Checkout
// re-prices the caller's cart against the live menu so stale cart snapshots
// cannot change what the kitchen charges or cooks.
type orderService struct {
	orderRepository store.OrderRepository
	cartRepository  store.CartRepository
	menuRepository  store.MenuRepository
	logger          *logger.Logger
}

// NewOrderService constructs an OrderService over the given repositories.
func NewOrderService(orderRepository store.OrderRepository, cartRepository store.CartRepository, menuRepository store.MenuRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		menuRepository:  menuRepository,
		logger:          logger,
	}
}

// Checkout turns the caller's cart into a pending order.
//
// Every cart line is re-validated against the live menu: missing or
// unavailable items abort the checkout, and current menu prices override the
// cart snapshots. The order's estimated preparation time is the maximum of
// the item estimates. Only cash payment is accepted; the order, its items,
// the initial audit row, and the cart clear are committed atomically by the
// repository.
func (o *orderService) Checkout(ctx context.Context, userID int64, req models.CheckoutRequest) (models.Order, error) {
	log := logger.FromContext(ctx)

	if req.CustomerName == "" {
		log.Error().Int64("user_id", userID).Msg("customer name is required")
		return models.Order{}, ErrInvalidDataProvided
	}
	if req.PaymentMethod != models.PaymentCash {
		log.Error().Str("payment_method", string(req.PaymentMethod)).Msg("unsupported payment method")
		return models.Order{}, ErrPaymentNotSupported
	}

	cart, err := o.cartRepository.GetCart(ctx, userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("cart lookup failed: %w", err)
	}
	if len(cart.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var items []models.OrderItem
	var totalCents int64
	var prepMinutes int
	for _, line := range cart.Items {
		menuItem, err := o.menuRepository.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			log.Err(err).Int64("menu_item_id", line.MenuItemID).Msg("cart references missing menu item")
			return models.Order{}, ErrItemUnavailable
		}
		if !menuItem.Available {
			log.Error().Int64("menu_item_id", line.MenuItemID).Msg("cart references unavailable menu item")
			return models.Order{}, ErrItemUnavailable
		}

		item := models.OrderItem{
			MenuItemID: menuItem.MenuItemID,
			Name:       menuItem.Name,
			PriceCents: menuItem.PriceCents,
			Quantity:   line.Quantity,
			Notes:      line.Notes,
		}
		items = append(items, item)
		totalCents += item.TotalCents()
		if menuItem.PrepMinutes > prepMinutes {
			prepMinutes = menuItem.PrepMinutes
		}
	}

	order := models.Order{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Status:        models.OrderStatusPending,
		Priority:      models.OrderPriorityMedium,
		PaymentMethod: req.PaymentMethod,
		TotalCents:    totalCents,
		Notes:         req.Notes,
		Items:         items,
		PrepMinutes:   prepMinutes,
	}

	created, err := o.orderRepository.CreateOrder(ctx, order)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("order creation failed")
		return models.Order{}, fmt.Errorf("order creation failed: %w", err)
	}

	log.Info().
		Str("order_number", created.OrderNumber).
		Int64("total_cents", created.TotalCents).
		Int("items", len(created.Items)).
		Msg("order placed")

	return created, nil
}

func (o *orderService) GetOrder(ctx context.Context, orderID int64) (models.Order, error) {
	if orderID <= 0 {
		return models.Order{}, ErrInvalidDataProvided
	}
	order, err := o.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}
	return order, nil
}

// GetOrderByNumber looks an order up by its public number. Receipts print
// the number as "#ORD0042", so a leading "#" and any casing are accepted.
func (o *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	orderNumber = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(orderNumber), "#"))
	if orderNumber == "" {
		return models.Order{}, ErrInvalidDataProvided
	}
	order, err := o.orderRepository.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}
	return order, nil
}

func (o *orderService) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	orders, err := o.orderRepository.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing orders failed: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances an order along its lifecycle.
//
// The transition is validated against the allowed lifecycle graph first, and
// the conditional repository update guards against concurrent transitions:
// if another actor moved the order since it was read, the update affects
// zero rows and store.ErrOrderStatusConflict comes back.
func (o *orderService) UpdateStatus(ctx context.Context, orderID int64, next models.OrderStatus, updatedBy int64, notes string) (models.Order, error) {
	log := logger.FromContext(ctx)

	if orderID <= 0 || !next.Valid() {
		return models.Order{}, ErrInvalidDataProvided
	}

	order, err := o.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}

	if !order.Status.CanTransitionTo(next) {
		log.Error().
			Str("order_number", order.OrderNumber).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("status transition not allowed")
		return models.Order{}, ErrInvalidStatusTransition
	}

	if err := o.orderRepository.UpdateOrderStatus(ctx, orderID, order.Status, next, updatedBy, notes); err != nil {
		return models.Order{}, fmt.Errorf("order status update failed: %w", err)
	}

	order.Status = next
	log.Info().
		Str("order_number", order.OrderNumber).
		Str("status", string(next)).
		Int64("updated_by", updatedBy).
		Msg("order status updated")

	return order, nil
}

func (o *orderService) StatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error) {
	if orderID <= 0 {
		return nil, ErrInvalidDataProvided
	}
	history, err := o.orderRepository.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing status history failed: %w", err)
	}
	return history, nil
}
