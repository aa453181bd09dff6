package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/dinehall/dinehall/models"
)

const (
	createUser = `INSERT INTO users (login, name, phone, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, name, phone, password_hash, role, created_at;`

	findUserByLogin = `SELECT user_id, login, name, phone, password_hash, role, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, name, phone, password_hash, role, created_at
    FROM users
    WHERE user_id = $1;`

	getThrottle = `SELECT login, fail_count, last_failed_at
    FROM login_throttle
    WHERE login = $1;`

	recordThrottleFailure = `INSERT INTO login_throttle (login, fail_count, last_failed_at)
    VALUES ($1, 1, NOW())
    ON CONFLICT (login)
    DO UPDATE SET fail_count = login_throttle.fail_count + 1, last_failed_at = NOW()
    RETURNING login, fail_count, last_failed_at;`

	resetThrottle = `DELETE FROM login_throttle WHERE login = $1;`

	listCategories = `SELECT category_id, name, description, sort_order
    FROM categories
    ORDER BY sort_order, name;`

	createCategory = `INSERT INTO categories (name, description, sort_order)
    VALUES ($1, $2, $3)
    RETURNING category_id, name, description, sort_order;`

	updateCategory = `UPDATE categories
    SET name = $2, description = $3, sort_order = $4
    WHERE category_id = $1
    RETURNING category_id, name, description, sort_order;`

	deleteCategory = `DELETE FROM categories WHERE category_id = $1;`

	getMenuItem = `SELECT menu_item_id, category_id, name, description, price_cents, available, prep_minutes, dietary_tags, created_at, updated_at
    FROM menu_items
    WHERE menu_item_id = $1;`

	createMenuItem = `INSERT INTO menu_items (category_id, name, description, price_cents, available, prep_minutes, dietary_tags)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING menu_item_id, category_id, name, description, price_cents, available, prep_minutes, dietary_tags, created_at, updated_at;`

	updateMenuItem = `UPDATE menu_items
    SET category_id = $2, name = $3, description = $4, price_cents = $5, available = $6, prep_minutes = $7, dietary_tags = $8, updated_at = NOW()
    WHERE menu_item_id = $1
    RETURNING menu_item_id, category_id, name, description, price_cents, available, prep_minutes, dietary_tags, created_at, updated_at;`

	deleteMenuItem = `DELETE FROM menu_items WHERE menu_item_id = $1;`

	getCart = `SELECT user_id, items, items_total_cents
    FROM carts
    WHERE user_id = $1;`

	saveCart = `INSERT INTO carts (user_id, items, items_total_cents, updated_at)
    VALUES ($1, $2, $3, NOW())
    ON CONFLICT (user_id)
    DO UPDATE SET items = EXCLUDED.items, items_total_cents = EXCLUDED.items_total_cents, updated_at = NOW();`

	clearCart = `DELETE FROM carts WHERE user_id = $1;`

	// order_number is assigned from a dedicated sequence so numbers stay
	// sequential even when order inserts roll back.
	createOrder = `INSERT INTO orders (order_number, user_id, customer_name, customer_phone, table_number, status, priority, payment_method, total_cents, notes, prep_minutes)
    VALUES ('ORD' || lpad(nextval('order_number_seq')::text, 4, '0'), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING order_id, order_number, created_at, updated_at;`

	createOrderItem = `INSERT INTO order_items (order_id, menu_item_id, name, price_cents, qty, notes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING order_item_id;`

	createOrderStatusUpdate = `INSERT INTO order_status_updates (order_id, status, updated_by, notes)
    VALUES ($1, $2, $3, $4);`

	getOrderByID = `SELECT order_id, order_number, user_id, customer_name, customer_phone, table_number, status, priority, payment_method, total_cents, notes, prep_minutes, created_at, updated_at
    FROM orders
    WHERE order_id = $1;`

	getOrderByNumber = `SELECT order_id, order_number, user_id, customer_name, customer_phone, table_number, status, priority, payment_method, total_cents, notes, prep_minutes, created_at, updated_at
    FROM orders
    WHERE order_number = $1;`

	listOrderItems = `SELECT order_item_id, order_id, menu_item_id, name, price_cents, qty, notes
    FROM order_items
    WHERE order_id = $1
    ORDER BY order_item_id;`

	updateOrderStatus = `UPDATE orders
    SET status = $3, updated_at = NOW()
    WHERE order_id = $1 AND status = $2;`

	listStatusHistory = `SELECT update_id, order_id, status, updated_by, notes, created_at
    FROM order_status_updates
    WHERE order_id = $1
    ORDER BY created_at, update_id;`

	updateOrderTotal = `UPDATE orders
    SET total_cents = $2, updated_at = NOW()
    WHERE order_id = $1;`

	cancelStaleOrders = `UPDATE orders
    SET status = 'cancelled', updated_at = NOW()
    WHERE status = 'pending' AND created_at < $1;`

	getMealPassPlan = `SELECT pass_id, name, tier, description, price_cents, duration_days, meals_per_period, discount_percent, active, created_at
    FROM meal_passes
    WHERE pass_id = $1;`

	createSubscription = `INSERT INTO meal_pass_subscriptions (subscription_id, user_id, pass_id, start_date, end_date, status, meals_remaining, total_meals, payment_method, payment_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING created_at;`

	getActiveSubscription = `SELECT subscription_id, user_id, pass_id, start_date, end_date, status, meals_remaining, total_meals, payment_method, payment_id, created_at
    FROM meal_pass_subscriptions
    WHERE user_id = $1 AND status = 'active'
    ORDER BY created_at DESC
    LIMIT 1;`

	listSubscriptions = `SELECT subscription_id, user_id, pass_id, start_date, end_date, status, meals_remaining, total_meals, payment_method, payment_id, created_at
    FROM meal_pass_subscriptions
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	redeemSubscription = `UPDATE meal_pass_subscriptions
    SET meals_remaining = meals_remaining - 1
    WHERE subscription_id = $1 AND status = 'active' AND meals_remaining > 0;`

	recordUsage = `INSERT INTO meal_pass_usage (usage_id, subscription_id, user_id, order_id, amount_saved_cents)
    VALUES ($1, $2, $3, $4, $5);`

	listUsage = `SELECT usage_id, subscription_id, user_id, order_id, amount_saved_cents, used_at
    FROM meal_pass_usage
    WHERE subscription_id = $1
    ORDER BY used_at DESC;`

	expireSubscriptions = `UPDATE meal_pass_subscriptions
    SET status = 'expired'
    WHERE status = 'active' AND end_date < $1;`

	listTables = `SELECT table_id, table_number, capacity, type, location, min_party_size, max_party_size, active
    FROM tables
    ORDER BY table_number;`

	getTable = `SELECT table_id, table_number, capacity, type, location, min_party_size, max_party_size, active
    FROM tables
    WHERE table_id = $1;`

	createReservation = `INSERT INTO table_reservations (reservation_id, table_id, user_id, date, time_slot, party_size, occasion, special_requests, status, confirmation_code)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING created_at, updated_at;`

	getReservationByCode = `SELECT reservation_id, table_id, user_id, date, time_slot, party_size, occasion, special_requests, status, confirmation_code, created_at, updated_at
    FROM table_reservations
    WHERE confirmation_code = $1;`

	listReservationsForDate = `SELECT reservation_id, table_id, user_id, date, time_slot, party_size, occasion, special_requests, status, confirmation_code, created_at, updated_at
    FROM table_reservations
    WHERE date = $1
    ORDER BY time_slot;`

	updateReservationStatus = `UPDATE table_reservations
    SET status = $3, updated_at = NOW()
    WHERE reservation_id = $1 AND status = $2;`

	createProfile = `INSERT INTO staff_profiles (user_id, employee_id, position, department, hourly_rate_cents, hire_date, active)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING profile_id, created_at;`

	getProfileByUserID = `SELECT profile_id, user_id, employee_id, position, department, hourly_rate_cents, hire_date, active, created_at
    FROM staff_profiles
    WHERE user_id = $1;`

	createTemplate = `INSERT INTO shift_templates (name, start_time, end_time, break_minutes, active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING template_id;`

	createShift = `INSERT INTO shifts (shift_id, profile_id, template_id, date, start_time, end_time, break_minutes, station, role, status, overtime, notes, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    RETURNING created_at;`

	getShift = `SELECT shift_id, profile_id, template_id, date, start_time, end_time, break_minutes, station, role, status, overtime, notes, created_by, created_at
    FROM shifts
    WHERE shift_id = $1;`

	updateShiftStatus = `UPDATE shifts
    SET status = $3
    WHERE shift_id = $1 AND status = $2;`

	publishShiftsForDate = `UPDATE shifts
    SET status = 'published'
    WHERE date = $1 AND status = 'draft';`

	dailyOrderStats = `SELECT
        COUNT(*) FILTER (WHERE status = 'completed'),
        COALESCE(SUM(total_cents) FILTER (WHERE status = 'completed'), 0),
        COUNT(*) FILTER (WHERE status = 'cancelled')
    FROM orders
    WHERE created_at::date = $1::date;`

	dailyMealPassSavings = `SELECT COALESCE(SUM(amount_saved_cents), 0)
    FROM meal_pass_usage
    WHERE used_at::date = $1::date;`

	dailyReservationsCount = `SELECT COUNT(*)
    FROM table_reservations
    WHERE date = $1;`

	topItems = `SELECT oi.menu_item_id, oi.name, SUM(oi.qty)::int, SUM(oi.price_cents * oi.qty)
    FROM order_items oi
    JOIN orders o ON o.order_id = oi.order_id
    WHERE o.status = 'completed' AND o.created_at::date BETWEEN $1::date AND $2::date
    GROUP BY oi.menu_item_id, oi.name
    ORDER BY SUM(oi.qty) DESC
    LIMIT $3;`

	statusBreakdown = `SELECT status, COUNT(*)::int
    FROM orders
    WHERE created_at::date BETWEEN $1::date AND $2::date
    GROUP BY status
    ORDER BY status;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListMenuItemsQuery renders the menu listing with optional filters for
// category, availability, and a case-insensitive name/description search.
func buildListMenuItemsQuery(filter models.MenuFilter) (string, []any, error) {
	builder := psql.
		Select("menu_item_id", "category_id", "name", "description", "price_cents",
			"available", "prep_minutes", "dietary_tags", "created_at", "updated_at").
		From("menu_items").
		OrderBy("category_id", "name")

	if filter.CategoryID > 0 {
		builder = builder.Where(sq.Eq{"category_id": filter.CategoryID})
	}
	if filter.OnlyAvailable {
		builder = builder.Where(sq.Eq{"available": true})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return builder.ToSql()
}

// buildListOrdersQuery renders the order listing with optional filters for
// owner, status, active-only, and creation date. Results come back oldest
// first so the kitchen queue is ready to use.
func buildListOrdersQuery(filter models.OrderFilter) (string, []any, error) {
	builder := psql.
		Select("order_id", "order_number", "user_id", "customer_name", "customer_phone",
			"table_number", "status", "priority", "payment_method", "total_cents",
			"notes", "prep_minutes", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at", "order_id")

	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"status": []models.OrderStatus{
			models.OrderStatusPending,
			models.OrderStatusConfirmed,
			models.OrderStatusPreparing,
			models.OrderStatusReady,
		}})
	}
	if filter.Date != "" {
		builder = builder.Where("created_at::date = ?::date", filter.Date)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

// buildListShiftsQuery renders the shift listing for a date range, optionally
// narrowed to one staff profile.
func buildListShiftsQuery(profileID int64, fromDate, toDate string) (string, []any, error) {
	builder := psql.
		Select("shift_id", "profile_id", "template_id", "date", "start_time", "end_time",
			"break_minutes", "station", "role", "status", "overtime", "notes",
			"created_by", "created_at").
		From("shifts").
		Where(sq.And{
			sq.GtOrEq{"date": fromDate},
			sq.LtOrEq{"date": toDate},
		}).
		OrderBy("date", "start_time")

	if profileID > 0 {
		builder = builder.Where(sq.Eq{"profile_id": profileID})
	}

	return builder.ToSql()
}

// buildListPlansQuery renders the meal pass plan listing, optionally hiding
// retired plans.
func buildListPlansQuery(activeOnly bool) (string, []any, error) {
	builder := psql.
		Select("pass_id", "name", "tier", "description", "price_cents", "duration_days",
			"meals_per_period", "discount_percent", "active", "created_at").
		From("meal_passes").
		OrderBy("price_cents")

	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	return builder.ToSql()
}

// buildListActiveReservationsQuery renders the reservations still holding a
// table slot on a date, optionally narrowed to one time slot.
func buildListActiveReservationsQuery(date, timeSlot string) (string, []any, error) {
	builder := psql.
		Select("reservation_id", "table_id", "user_id", "date", "time_slot", "party_size",
			"occasion", "special_requests", "status", "confirmation_code",
			"created_at", "updated_at").
		From("table_reservations").
		Where(sq.Eq{"date": date}).
		Where(sq.Eq{"status": []models.ReservationStatus{
			models.ReservationPending,
			models.ReservationConfirmed,
			models.ReservationSeated,
		}}).
		OrderBy("time_slot")

	if timeSlot != "" {
		builder = builder.Where(sq.Eq{"time_slot": timeSlot})
	}

	return builder.ToSql()
}

// buildListProfilesQuery renders the staff profile listing, optionally hiding
// inactive employees.
func buildListProfilesQuery(activeOnly bool) (string, []any, error) {
	builder := psql.
		Select("profile_id", "user_id", "employee_id", "position", "department",
			"hourly_rate_cents", "hire_date", "active", "created_at").
		From("staff_profiles").
		OrderBy("employee_id")

	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	return builder.ToSql()
}

// buildListTemplatesQuery renders the shift template listing, optionally
// hiding retired templates.
func buildListTemplatesQuery(activeOnly bool) (string, []any, error) {
	builder := psql.
		Select("template_id", "name", "start_time", "end_time", "break_minutes", "active").
		From("shift_templates").
		OrderBy("start_time", "name")

	if activeOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}

	return builder.ToSql()
}
