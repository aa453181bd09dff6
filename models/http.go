package models

// Request and response envelopes for the HTTP API. Domain entities are
// embedded directly where the wire shape matches the model.

// RegisterRequest creates a new customer account.
type RegisterRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse returns the bearer token after register/login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AddCartItemRequest puts a menu item into the caller's cart.
type AddCartItemRequest struct {
	MenuItemID int64  `json:"menu_item_id"`
	Quantity   int    `json:"qty"`
	Notes      string `json:"notes,omitempty"`
}

// SetCartItemRequest sets the quantity of a cart line; zero removes it.
type SetCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"qty"`
}

// CheckoutRequest turns the caller's cart into an order.
type CheckoutRequest struct {
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	TableNumber   string        `json:"table_number,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes,omitempty"`
}

// CheckoutResponse confirms order placement.
type CheckoutResponse struct {
	OrderNumber string `json:"order_number"`
	TotalCents  int64  `json:"total_cents"`
	PrepMinutes int    `json:"prep_minutes"`
}

// UpdateOrderStatusRequest advances an order's lifecycle state.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
	Notes  string      `json:"notes,omitempty"`
}

// RedeemMealPassRequest applies the caller's meal pass to an order.
type RedeemMealPassRequest struct {
	OrderID int64 `json:"order_id"`
}

// RedeemMealPassResponse reports the applied discount.
type RedeemMealPassResponse struct {
	AmountSavedCents int64 `json:"amount_saved_cents"`
	NewTotalCents    int64 `json:"new_total_cents"`
	MealsRemaining   int   `json:"meals_remaining"`
}

// CreateReservationRequest books a table.
type CreateReservationRequest struct {
	TableID   int64  `json:"table_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM
	PartySize int    `json:"party_size"`
	Occasion  string `json:"occasion,omitempty"`
	Requests  string `json:"special_requests,omitempty"`
}

// HealthResponse is the body of the root health check used by the hosting
// platform to decide whether the deploy is live.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database"`
}

// ErrorResponse is the uniform error body for non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
