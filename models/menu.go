package models

import "time"

// Category groups menu items on the public menu (e.g. "Appetizers", "Mains").
type Category struct {
	CategoryID  int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// MenuItem is a single orderable dish or drink.
//
// Prices are stored in the smallest currency unit (cents) to avoid
// floating-point arithmetic anywhere in the order pipeline.
type MenuItem struct {
	MenuItemID  int64  `json:"id,omitempty"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// PriceCents is the current selling price in cents.
	PriceCents int64 `json:"price_cents"`

	// Available controls public visibility: unavailable items are hidden
	// from the customer menu but remain visible to staff.
	Available bool `json:"available"`

	// PrepMinutes is the estimated preparation time used by the kitchen
	// display to flag overdue orders.
	PrepMinutes int `json:"prep_minutes"`

	// DietaryTags holds labels such as "vegetarian" or "gluten-free".
	DietaryTags []string `json:"dietary_tags,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// MenuFilter narrows menu listings. Zero values mean "no restriction";
// OnlyAvailable is forced on for unauthenticated callers.
type MenuFilter struct {
	CategoryID    int64  `json:"category_id,omitempty"`
	Search        string `json:"search,omitempty"`
	OnlyAvailable bool   `json:"only_available,omitempty"`
}
