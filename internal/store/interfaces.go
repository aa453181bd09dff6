package store

import (
	"context"
	"time"

	"github.com/dinehall/dinehall/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ThrottleRepository tracks failed login attempts per login.
type ThrottleRepository interface {
	GetThrottle(ctx context.Context, login string) (models.LoginThrottle, error)
	RecordFailure(ctx context.Context, login string) (models.LoginThrottle, error)
	ResetThrottle(ctx context.Context, login string) error
}

// MenuRepository persists menu categories and items.
type MenuRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	ListMenuItems(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, menuItemID int64) error
}

// CartRepository persists one cart row per user with the items serialized
// to JSONB.
type CartRepository interface {
	GetCart(ctx context.Context, userID int64) (models.Cart, error)
	SaveCart(ctx context.Context, cart models.Cart) error
	ClearCart(ctx context.Context, userID int64) error
}

// OrderRepository persists orders, their line items, and the status audit
// trail.
type OrderRepository interface {
	// CreateOrder inserts the order, its items, and the initial audit row,
	// and clears the owner's cart, all in one transaction.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	GetOrderByID(ctx context.Context, orderID int64) (models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// UpdateOrderStatus conditionally advances the status and records an
	// audit row. Returns ErrOrderStatusConflict when the current status no
	// longer matches from.
	UpdateOrderStatus(ctx context.Context, orderID int64, from, to models.OrderStatus, updatedBy int64, notes string) error
	ListStatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error)
	// UpdateOrderTotal overwrites the order total, used when a meal pass
	// discount is applied.
	UpdateOrderTotal(ctx context.Context, orderID int64, totalCents int64) error
	// CancelStaleOrders cancels pending orders created before the cutoff and
	// returns how many were affected.
	CancelStaleOrders(ctx context.Context, cutoff time.Time) (int64, error)
}

// MealPassRepository persists meal pass plans, purchased subscriptions, and
// redemption records.
type MealPassRepository interface {
	ListPlans(ctx context.Context, activeOnly bool) ([]models.MealPass, error)
	GetPlan(ctx context.Context, passID string) (models.MealPass, error)
	CreateSubscription(ctx context.Context, sub models.MealPassSubscription) (models.MealPassSubscription, error)
	GetActiveSubscription(ctx context.Context, userID int64) (models.MealPassSubscription, error)
	ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error)
	// RedeemSubscription decrements meals_remaining and records the usage in
	// one transaction. Returns ErrSubscriptionExhausted when the subscription
	// cannot be redeemed.
	RedeemSubscription(ctx context.Context, usage models.MealPassUsage) error
	ListUsage(ctx context.Context, subscriptionID string) ([]models.MealPassUsage, error)
	// ExpireSubscriptions marks active subscriptions past their end date as
	// expired and returns how many were affected.
	ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

// ReservationRepository persists restaurant tables and their reservations.
type ReservationRepository interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	GetTable(ctx context.Context, tableID int64) (models.Table, error)
	CreateReservation(ctx context.Context, reservation models.TableReservation) (models.TableReservation, error)
	GetReservationByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error)
	// ListActiveReservations returns reservations holding a table slot on the
	// given date, optionally narrowed to one time slot.
	ListActiveReservations(ctx context.Context, date, timeSlot string) ([]models.TableReservation, error)
	ListReservationsForDate(ctx context.Context, date string) ([]models.TableReservation, error)
	// UpdateReservationStatus conditionally advances the status. Returns
	// ErrReservationStatusConflict when the current status no longer
	// matches from.
	UpdateReservationStatus(ctx context.Context, reservationID string, from, to models.ReservationStatus) error
}

// ScheduleRepository persists staff profiles, shift templates, and shifts.
type ScheduleRepository interface {
	CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error)
	ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (models.StaffProfile, error)

	CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error)

	CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error)
	GetShift(ctx context.Context, shiftID string) (models.Shift, error)
	// ListShifts returns shifts whose date falls in [fromDate, toDate],
	// optionally narrowed to one staff profile (profileID > 0).
	ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error)
	// UpdateShiftStatus conditionally advances the status. Returns
	// ErrShiftStatusConflict when the current status no longer matches from.
	UpdateShiftStatus(ctx context.Context, shiftID string, from, to models.ShiftStatus) error
	// PublishShiftsForDate flips every draft shift on the date to published
	// and returns the number of shifts affected.
	PublishShiftsForDate(ctx context.Context, date string) (int64, error)
}

// AnalyticsRepository serves read-only reporting aggregates.
type AnalyticsRepository interface {
	DailyStats(ctx context.Context, date string) (models.DailyStats, error)
	TopItems(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error)
	StatusBreakdown(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error)
}
