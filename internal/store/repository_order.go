// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dinehall/dinehall/internal/logger"
	"github.com/dinehall/dinehall/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Orders span three tables: "orders" (the header row with
// its sequence-assigned order number), "order_items" (price snapshots of the
// ordered dishes), and "order_status_updates" (the append-only audit trail).
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder inserts the order header, its line items, and the initial
// audit row, then clears the owner's cart, all inside one transaction so a
// half-written order never becomes visible.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createOrder,
		nullableID(order.UserID), order.CustomerName, order.CustomerPhone, order.TableNumber,
		order.Status, order.Priority, order.PaymentMethod, order.TotalCents,
		order.Notes, order.PrepMinutes)
	if err := row.Scan(&order.OrderID, &order.OrderNumber, &order.CreatedAt, &order.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.OrderID

		itemRow := tx.QueryRowContext(ctx, createOrderItem,
			item.OrderID, item.MenuItemID, item.Name, item.PriceCents, item.Quantity, item.Notes)
		if err := itemRow.Scan(&item.OrderItemID); err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order item")
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, createOrderStatusUpdate, order.OrderID, order.Status, nullableID(order.UserID), "order placed"); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting audit row")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if order.UserID > 0 {
		if _, err := tx.ExecContext(ctx, clearCart, order.UserID); err != nil {
			log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error clearing cart")
			return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// GetOrderByID returns the order with its line items.
func (r *orderRepository) GetOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	return r.getOrder(ctx, getOrderByID, orderID)
}

// GetOrderByNumber returns the order with its line items, looked up by the
// human-facing order number (e.g. "ORD0042").
func (r *orderRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	return r.getOrder(ctx, getOrderByNumber, orderNumber)
}

func (r *orderRepository) getOrder(ctx context.Context, query string, arg any) (models.Order, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, arg)
	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrOrderNotFound
		}
		log.Err(err).Str("func", "*orderRepository.getOrder").Msg("error: scanning error")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	items, err := r.listItems(ctx, order.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	order.Items = items

	return order, nil
}

// ListOrders returns order headers matching the filter, oldest first, without
// loading line items. Callers that need items fetch the order individually.
func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// UpdateOrderStatus advances the order status only when the current status
// still matches from, and records the audit row in the same transaction.
// A zero-row update means another actor got there first. Transient failures
// (deadlocks, dropped connections) get one retry of the whole transaction.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, from, to models.OrderStatus, updatedBy int64, notes string) error {
	return r.db.withRetry(ctx, func() error {
		return r.updateOrderStatusOnce(ctx, orderID, from, to, updatedBy, notes)
	})
}

func (r *orderRepository) updateOrderStatusOnce(ctx context.Context, orderID int64, from, to models.OrderStatus, updatedBy int64, notes string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateOrderStatus, orderID, from, to)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrOrderStatusConflict
	}

	if _, err := tx.ExecContext(ctx, createOrderStatusUpdate, orderID, to, nullableID(updatedBy), notes); err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error inserting audit row")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// ListStatusHistory returns the order's audit trail oldest first.
func (r *orderRepository) ListStatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listStatusHistory, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListStatusHistory").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var history []models.OrderStatusUpdate
	for rows.Next() {
		var update models.OrderStatusUpdate
		var updatedBy sql.NullInt64
		if err := rows.Scan(&update.UpdateID, &update.OrderID, &update.Status, &updatedBy, &update.Notes, &update.Timestamp); err != nil {
			log.Err(err).Str("func", "*orderRepository.ListStatusHistory").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		update.UpdatedBy = updatedBy.Int64
		history = append(history, update)
	}

	return history, rows.Err()
}

// UpdateOrderTotal overwrites the order total, used when a meal pass discount
// is applied after the order is placed.
func (r *orderRepository) UpdateOrderTotal(ctx context.Context, orderID int64, totalCents int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateOrderTotal, orderID, totalCents)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderTotal").Msg("error executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// CancelStaleOrders cancels pending orders created before the cutoff and
// returns how many were affected. Called by the stale order worker.
func (r *orderRepository) CancelStaleOrders(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, cancelStaleOrders, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CancelStaleOrders").Msg("error executing update")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listOrderItems, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.listItems").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.OrderItemID, &item.OrderID, &item.MenuItemID, &item.Name, &item.PriceCents, &item.Quantity, &item.Notes); err != nil {
			log.Err(err).Str("func", "*orderRepository.listItems").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// scanOrder reads one orders row; works for both sql.Row and sql.Rows through
// the scan func. user_id is nullable for walk-in orders.
func scanOrder(scan func(dest ...any) error) (models.Order, error) {
	var order models.Order
	var userID sql.NullInt64

	err := scan(&order.OrderID, &order.OrderNumber, &userID, &order.CustomerName,
		&order.CustomerPhone, &order.TableNumber, &order.Status, &order.Priority,
		&order.PaymentMethod, &order.TotalCents, &order.Notes, &order.PrepMinutes,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}
	order.UserID = userID.Int64

	return order, nil
}

// nullableID maps the zero identifier to SQL NULL.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
