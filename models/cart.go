package models

// CartItem is one line of a user's cart. Name and price are snapshots taken
// when the item was added so the cart stays stable if the menu changes;
// checkout re-validates against the live menu.
type CartItem struct {
	MenuItemID int64  `json:"menu_item_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"qty"`
	Notes      string `json:"notes,omitempty"`
}

// Cart is a user's current cart. It is persisted as a single row per user
// with the item list serialized to JSONB.
type Cart struct {
	UserID          int64      `json:"-"`
	Items           []CartItem `json:"items"`
	ItemsTotalCents int64      `json:"items_total_cents"`
}

// Total recomputes the items total from the line items.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
