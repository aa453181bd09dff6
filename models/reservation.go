package models

import "time"

// TableType describes the seating style of a restaurant table.
type TableType string

const (
	TableStandard TableType = "standard"
	TableBooth    TableType = "booth"
	TablePrivate  TableType = "private"
	TableOutdoor  TableType = "outdoor"
	TableBar      TableType = "bar"
)

// Table is a physical restaurant table available for reservations.
type Table struct {
	TableID      int64     `json:"id,omitempty"`
	TableNumber  string    `json:"table_number"`
	Capacity     int       `json:"capacity"`
	Type         TableType `json:"type"`
	Location     string    `json:"location,omitempty"`
	MinPartySize int       `json:"min_party_size"`
	MaxPartySize int       `json:"max_party_size"`
	Active       bool      `json:"active"`
}

// FitsParty reports whether the table can seat a party of the given size.
func (t Table) FitsParty(size int) bool {
	return size >= t.MinPartySize && size <= t.MaxPartySize && size <= t.Capacity
}

// ReservationStatus is the lifecycle state of a table reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationNoShow    ReservationStatus = "no_show"
)

// Active reports whether the reservation still holds its table slot.
func (s ReservationStatus) Active() bool {
	return s == ReservationPending || s == ReservationConfirmed || s == ReservationSeated
}

// CanTransitionTo reports whether the status may move to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationPending:
		return next == ReservationConfirmed || next == ReservationCancelled
	case ReservationConfirmed:
		return next == ReservationSeated || next == ReservationCancelled || next == ReservationNoShow
	case ReservationSeated:
		return next == ReservationCompleted
	}
	return false
}

// TableReservation books a table for a party at a date and time slot.
type TableReservation struct {
	ReservationID string            `json:"id"`
	TableID       int64             `json:"table_id"`
	UserID        int64             `json:"user_id"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Time          string            `json:"time"` // HH:MM
	PartySize     int               `json:"party_size"`
	Occasion      string            `json:"occasion,omitempty"`
	Requests      string            `json:"special_requests,omitempty"`
	Status        ReservationStatus `json:"status"`

	// ConfirmationCode is the 8-character code customers use to look up
	// their reservation without logging in.
	ConfirmationCode string `json:"confirmation_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
