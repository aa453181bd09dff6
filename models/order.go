package models

import (
	"time"
)

// OrderStatus is the lifecycle state of an order.
//
// The normal flow is pending → confirmed → preparing → ready → completed.
// Cancellation is allowed only from pending and confirmed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed || next == OrderStatusCancelled
	case OrderStatusConfirmed:
		return next == OrderStatusPreparing || next == OrderStatusCancelled
	case OrderStatusPreparing:
		return next == OrderStatusReady
	case OrderStatusReady:
		return next == OrderStatusCompleted
	}
	return false
}

// Active reports whether the order still needs kitchen attention.
func (s OrderStatus) Active() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady:
		return true
	}
	return false
}

// OrderPriority orders tickets on the kitchen display.
type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityMedium OrderPriority = "medium"
	OrderPriorityHigh   OrderPriority = "high"
	OrderPriorityUrgent OrderPriority = "urgent"
)

// Valid reports whether p is a known priority.
func (p OrderPriority) Valid() bool {
	switch p {
	case OrderPriorityLow, OrderPriorityMedium, OrderPriorityHigh, OrderPriorityUrgent:
		return true
	}
	return false
}

// PaymentMethod is how the customer intends to pay.
// Only cash is currently accepted at checkout; card and online are declared
// so stored orders from future payment integrations stay representable.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

// Order is a placed customer order.
type Order struct {
	OrderID int64 `json:"id,omitempty"`

	// OrderNumber is the human-facing sequential identifier, e.g. "ORD0042".
	OrderNumber string `json:"order_number"`

	// UserID is the owning account; zero for walk-in orders placed by staff.
	UserID int64 `json:"user_id,omitempty"`

	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	TableNumber   string        `json:"table_number,omitempty"`
	Status        OrderStatus   `json:"status"`
	Priority      OrderPriority `json:"priority"`
	PaymentMethod PaymentMethod `json:"payment_method"`

	// TotalCents is the order total in cents, after any meal pass discount.
	TotalCents int64 `json:"total_cents"`

	Notes string      `json:"notes,omitempty"`
	Items []OrderItem `json:"items,omitempty"`

	// PrepMinutes is the aggregate estimated preparation time, taken as the
	// maximum of the item estimates at checkout.
	PrepMinutes int `json:"prep_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ElapsedMinutes returns whole minutes since the order was created.
func (o *Order) ElapsedMinutes(now time.Time) int {
	if o.CreatedAt.IsZero() {
		return 0
	}
	return int(now.Sub(o.CreatedAt).Minutes())
}

// Overdue reports whether an active order has exceeded its estimated
// preparation time.
func (o *Order) Overdue(now time.Time) bool {
	if !o.Status.Active() || o.PrepMinutes <= 0 {
		return false
	}
	return o.ElapsedMinutes(now) > o.PrepMinutes
}

// OrderItem is one line of an order. Name and price are snapshots of the
// menu item at checkout time.
type OrderItem struct {
	OrderItemID int64  `json:"id,omitempty"`
	OrderID     int64  `json:"-"`
	MenuItemID  int64  `json:"menu_item_id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Quantity    int    `json:"qty"`
	Notes       string `json:"notes,omitempty"`
}

// TotalCents returns the line total.
func (i OrderItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}

// OrderFilter narrows order listings. Zero values mean "no restriction".
type OrderFilter struct {
	UserID     int64       `json:"user_id,omitempty"`
	Status     OrderStatus `json:"status,omitempty"`
	ActiveOnly bool        `json:"active_only,omitempty"`
	Date       string      `json:"date,omitempty"` // YYYY-MM-DD, matches creation date
	Limit      uint64      `json:"limit,omitempty"`
}

// OrderStatusUpdate is one entry of the order's status audit trail.
type OrderStatusUpdate struct {
	UpdateID  int64       `json:"id,omitempty"`
	OrderID   int64       `json:"order_id"`
	Status    OrderStatus `json:"status"`
	UpdatedBy int64       `json:"updated_by,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
