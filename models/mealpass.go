package models

import "time"

// MealPassTier is the billing cadence of a meal pass plan.
type MealPassTier string

const (
	TierWeekly       MealPassTier = "weekly"
	TierMonthly      MealPassTier = "monthly"
	TierSuperSpecial MealPassTier = "super_special"
)

// Valid reports whether t is a known tier.
func (t MealPassTier) Valid() bool {
	switch t {
	case TierWeekly, TierMonthly, TierSuperSpecial:
		return true
	}
	return false
}

// MealPass is a purchasable subscription plan.
type MealPass struct {
	PassID          string       `json:"id"`
	Name            string       `json:"name"`
	Tier            MealPassTier `json:"tier"`
	Description     string       `json:"description,omitempty"`
	PriceCents      int64        `json:"price_cents"`
	DurationDays    int          `json:"duration_days"`
	MealsPerPeriod  int          `json:"meals_per_period"`
	DiscountPercent int          `json:"discount_percent"`
	Active          bool         `json:"active"`
	CreatedAt       time.Time    `json:"created_at,omitempty"`
}

// SubscriptionStatus is the lifecycle state of a purchased meal pass.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// MealPassSubscription is a user's purchased meal pass instance.
type MealPassSubscription struct {
	SubscriptionID string             `json:"id"`
	UserID         int64              `json:"user_id"`
	PassID         string             `json:"meal_pass_id"`
	Pass           *MealPass          `json:"meal_pass,omitempty"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Status         SubscriptionStatus `json:"status"`
	MealsRemaining int                `json:"meals_remaining"`
	TotalMeals     int                `json:"total_meals"`
	PaymentMethod  PaymentMethod      `json:"payment_method"`
	PaymentID      string             `json:"payment_id,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Usable reports whether the subscription can be redeemed right now:
// it must be active, not past its end date, and have meals remaining.
func (s *MealPassSubscription) Usable(now time.Time) bool {
	return s.Status == SubscriptionActive && s.EndDate.After(now) && s.MealsRemaining > 0
}

// MealPassUsage records a single redemption against an order.
type MealPassUsage struct {
	UsageID          string    `json:"id"`
	SubscriptionID   string    `json:"subscription_id"`
	UserID           int64     `json:"user_id"`
	OrderID          int64     `json:"order_id"`
	AmountSavedCents int64     `json:"amount_saved_cents"`
	UsedAt           time.Time `json:"used_at"`
}
