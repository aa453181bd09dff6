package models

// KitchenTicket is the kitchen display projection of an active order:
// the order itself plus timing fields computed server-side so every
// display client agrees on elapsed time and overdue state.
type KitchenTicket struct {
	Order          Order `json:"order"`
	ElapsedMinutes int   `json:"elapsed_minutes"`
	Overdue        bool  `json:"overdue"`
}

// KitchenSummary gives per-status counts for the display header.
type KitchenSummary struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Overdue   int `json:"overdue"`
}
