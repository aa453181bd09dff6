package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCategoryNotFound is returned when a menu category lookup by ID
	// produces no rows.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrMenuItemNotFound is returned when a menu item lookup by ID produces
	// no rows.
	ErrMenuItemNotFound = errors.New("menu item was not found")

	// ErrOrderNotFound is returned when an order lookup by ID or order number
	// produces no rows.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrOrderStatusConflict is returned when a conditional status update
	// affects zero rows, meaning the order moved to another state since the
	// caller last read it.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")

	// ErrTableNotFound is returned when a restaurant table lookup by ID
	// produces no rows.
	ErrTableNotFound = errors.New("table was not found")

	// ErrReservationNotFound is returned when a reservation lookup by ID or
	// confirmation code produces no rows.
	ErrReservationNotFound = errors.New("reservation was not found")

	// ErrReservationStatusConflict is returned when a conditional reservation
	// status update affects zero rows.
	ErrReservationStatusConflict = errors.New("reservation status changed concurrently")

	// ErrMealPassNotFound is returned when a meal pass plan lookup by ID
	// produces no rows.
	ErrMealPassNotFound = errors.New("meal pass was not found")

	// ErrSubscriptionNotFound is returned when a subscription lookup produces
	// no rows, including "no active subscription" dashboard queries.
	ErrSubscriptionNotFound = errors.New("meal pass subscription was not found")

	// ErrSubscriptionExhausted is returned when a redemption decrements a
	// subscription that has no meals remaining or is no longer active.
	ErrSubscriptionExhausted = errors.New("meal pass subscription has no meals remaining")

	// ErrActiveSubscriptionExists is returned when inserting a subscription
	// violates the one-active-per-user unique index.
	ErrActiveSubscriptionExists = errors.New("an active subscription already exists for the user")

	// ErrTableSlotTaken is returned when inserting a reservation violates the
	// one-active-booking-per-table-and-slot unique index.
	ErrTableSlotTaken = errors.New("table slot is already booked")

	// ErrShiftNotFound is returned when a shift lookup by ID produces no rows.
	ErrShiftNotFound = errors.New("shift was not found")

	// ErrShiftStatusConflict is returned when a conditional shift status
	// update affects zero rows.
	ErrShiftStatusConflict = errors.New("shift status changed concurrently")

	// ErrProfileNotFound is returned when a staff profile lookup produces no
	// rows.
	ErrProfileNotFound = errors.New("staff profile was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
