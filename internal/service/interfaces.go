package service

import (
	"context"
	"time"

	"github.com/dinehall/dinehall/models"
)

// AuthService handles account registration, credential verification with
// login throttling, and JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Profile returns the account record for userID.
	Profile(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MenuService manages menu categories and items.
type MenuService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	// ListMenu returns items matching the filter. Unauthenticated and
	// customer callers get OnlyAvailable forced on by the handler layer.
	ListMenu(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, menuItemID int64) (models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, menuItemID int64) error
}

// CartService manages the per-user cart. Item names and prices are
// snapshotted from the live menu when a line is added.
type CartService interface {
	GetCart(ctx context.Context, userID int64) (models.Cart, error)
	AddItem(ctx context.Context, userID int64, req models.AddCartItemRequest) (models.Cart, error)
	SetItem(ctx context.Context, userID int64, req models.SetCartItemRequest) (models.Cart, error)
	ClearCart(ctx context.Context, userID int64) error
}

// OrderService turns carts into orders and manages the order lifecycle.
type OrderService interface {
	// Checkout re-validates the caller's cart against the live menu, prices
	// the order, and creates it. Only cash payment is accepted.
	Checkout(ctx context.Context, userID int64, req models.CheckoutRequest) (models.Order, error)
	GetOrder(ctx context.Context, orderID int64) (models.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// UpdateStatus validates the lifecycle transition before applying it.
	UpdateStatus(ctx context.Context, orderID int64, next models.OrderStatus, updatedBy int64, notes string) (models.Order, error)
	StatusHistory(ctx context.Context, orderID int64) ([]models.OrderStatusUpdate, error)
}

// KitchenService projects active orders onto the kitchen display.
type KitchenService interface {
	// Tickets returns active orders ordered for the kitchen: urgent first,
	// then oldest first, with elapsed/overdue computed server-side.
	Tickets(ctx context.Context) ([]models.KitchenTicket, error)
	Summary(ctx context.Context) (models.KitchenSummary, error)
}

// MealPassService manages meal pass plans, purchases, and redemptions.
type MealPassService interface {
	ListPlans(ctx context.Context) ([]models.MealPass, error)
	// Purchase creates a subscription for the plan. A user may hold at most
	// one active subscription at a time and must have a phone on file.
	Purchase(ctx context.Context, userID int64, passID string, payment models.PaymentMethod) (models.MealPassSubscription, error)
	// Dashboard returns the caller's active subscription with its plan and
	// recent usage attached.
	Dashboard(ctx context.Context, userID int64) (models.MealPassSubscription, []models.MealPassUsage, error)
	ListSubscriptions(ctx context.Context, userID int64) ([]models.MealPassSubscription, error)
	// Redeem applies the caller's active pass to one of their orders,
	// discounting the order total by the plan's percentage.
	Redeem(ctx context.Context, userID int64, orderID int64) (models.RedeemMealPassResponse, error)
}

// ReservationService manages tables and bookings.
type ReservationService interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	// Availability returns active tables that fit the party and are not
	// already booked for the date and time slot.
	Availability(ctx context.Context, date, timeSlot string, partySize int) ([]models.Table, error)
	CreateReservation(ctx context.Context, userID int64, req models.CreateReservationRequest) (models.TableReservation, error)
	GetByCode(ctx context.Context, confirmationCode string) (models.TableReservation, error)
	ListForDate(ctx context.Context, date string) ([]models.TableReservation, error)
	// UpdateStatus validates the lifecycle transition before applying it.
	UpdateStatus(ctx context.Context, confirmationCode string, next models.ReservationStatus) (models.TableReservation, error)
}

// ScheduleService manages staff profiles, shift templates, and the weekly
// schedule.
type ScheduleService interface {
	CreateProfile(ctx context.Context, profile models.StaffProfile) (models.StaffProfile, error)
	ListProfiles(ctx context.Context, activeOnly bool) ([]models.StaffProfile, error)

	CreateTemplate(ctx context.Context, template models.ShiftTemplate) (models.ShiftTemplate, error)
	ListTemplates(ctx context.Context, activeOnly bool) ([]models.ShiftTemplate, error)

	// CreateShift rejects shifts that overlap an existing shift of the same
	// profile on the same date.
	CreateShift(ctx context.Context, shift models.Shift) (models.Shift, error)
	ListShifts(ctx context.Context, profileID int64, fromDate, toDate string) ([]models.Shift, error)
	// ListShiftsForUser resolves the staff profile linked to userID and
	// returns that profile's shifts in [fromDate, toDate].
	ListShiftsForUser(ctx context.Context, userID int64, fromDate, toDate string) ([]models.Shift, error)
	UpdateShiftStatus(ctx context.Context, shiftID string, status models.ShiftStatus) error
	// PublishDay publishes every draft shift on the date and returns how
	// many shifts changed.
	PublishDay(ctx context.Context, date string) (int64, error)
	// LaborCost sums the cost of all shifts in the range at each profile's
	// hourly rate, in cents.
	LaborCost(ctx context.Context, fromDate, toDate string) (int64, error)
}

// AnalyticsService serves reporting aggregates to managers.
type AnalyticsService interface {
	DailyStats(ctx context.Context, date string) (models.DailyStats, error)
	TopItems(ctx context.Context, fromDate, toDate string, limit uint64) ([]models.TopMenuItem, error)
	StatusBreakdown(ctx context.Context, fromDate, toDate string) ([]models.StatusBreakdown, error)
}

// Clock abstracts time.Now so lifecycle rules (throttle cooldowns,
// subscription windows, overdue tickets) are testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
