package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTooManyLoginAttempts is returned while the login cooldown imposed
	// after repeated failures has not yet elapsed.
	ErrTooManyLoginAttempts = errors.New("too many failed login attempts, try again later")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrEmptyCart is returned when checkout is attempted with no items in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrItemUnavailable is returned when a cart or checkout references a
	// menu item that is missing or currently unavailable.
	ErrItemUnavailable = errors.New("menu item is not available")

	// ErrCartItemNotFound is returned when a quantity change targets a menu
	// item that is not in the cart.
	ErrCartItemNotFound = errors.New("item is not in the cart")

	// ErrPaymentNotSupported is returned when checkout or a meal pass
	// purchase requests a payment method other than cash.
	ErrPaymentNotSupported = errors.New("only cash payment is currently accepted")

	// ErrInvalidStatusTransition is returned when an order or reservation
	// status change does not follow the allowed lifecycle.
	ErrInvalidStatusTransition = errors.New("status transition is not allowed")

	// ErrPhoneRequired is returned when a meal pass purchase is attempted by
	// an account without a contact phone.
	ErrPhoneRequired = errors.New("a contact phone is required for meal pass purchases")

	// ErrActiveSubscriptionExists is returned when a purchase is attempted
	// while the user already holds an active subscription.
	ErrActiveSubscriptionExists = errors.New("an active meal pass subscription already exists")

	// ErrSubscriptionNotUsable is returned when a redemption is attempted
	// against a subscription that is expired or out of meals.
	ErrSubscriptionNotUsable = errors.New("meal pass subscription cannot be used")

	// ErrTableUnavailable is returned when the requested table is already
	// booked for the date and time slot, or does not fit the party.
	ErrTableUnavailable = errors.New("table is not available for the requested slot")

	// ErrShiftOverlap is returned when a new shift overlaps an existing
	// shift of the same staff profile on the same date.
	ErrShiftOverlap = errors.New("shift overlaps an existing shift")
)
