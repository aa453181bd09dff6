package models

// DailyStats aggregates completed business for a single calendar day.
type DailyStats struct {
	Date              string `json:"date"` // YYYY-MM-DD
	OrdersCount       int    `json:"orders_count"`
	RevenueCents      int64  `json:"revenue_cents"`
	AvgOrderCents     int64  `json:"avg_order_cents"`
	CancelledCount    int    `json:"cancelled_count"`
	MealPassSavings   int64  `json:"meal_pass_savings_cents"`
	ReservationsCount int    `json:"reservations_count"`
}

// TopMenuItem is one row of the top-sellers report.
type TopMenuItem struct {
	MenuItemID   int64  `json:"menu_item_id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
	RevenueCents int64  `json:"revenue_cents"`
}

// StatusBreakdown counts orders per lifecycle state over a range.
type StatusBreakdown struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}
