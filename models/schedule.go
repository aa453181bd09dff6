package models

import "time"

// StaffProfile extends a staff account with employment details.
type StaffProfile struct {
	ProfileID       int64     `json:"id,omitempty"`
	UserID          int64     `json:"user_id"`
	EmployeeID      string    `json:"employee_id"`
	Position        string    `json:"position"`
	Department      string    `json:"department,omitempty"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	HireDate        string    `json:"hire_date"` // YYYY-MM-DD
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// ShiftTemplate is a reusable shift definition (e.g. "Morning 08:00-16:00").
type ShiftTemplate struct {
	TemplateID   int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	BreakMinutes int    `json:"break_minutes"`
	Active       bool   `json:"active"`
}

// ShiftStatus is the publication state of a scheduled shift.
type ShiftStatus string

const (
	ShiftDraft     ShiftStatus = "draft"
	ShiftPublished ShiftStatus = "published"
	ShiftActive    ShiftStatus = "active"
	ShiftCompleted ShiftStatus = "completed"
)

// Valid reports whether s is a known shift status.
func (s ShiftStatus) Valid() bool {
	switch s {
	case ShiftDraft, ShiftPublished, ShiftActive, ShiftCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next. Shifts move
// strictly forward: draft → published → active → completed.
func (s ShiftStatus) CanTransitionTo(next ShiftStatus) bool {
	switch s {
	case ShiftDraft:
		return next == ShiftPublished
	case ShiftPublished:
		return next == ShiftActive
	case ShiftActive:
		return next == ShiftCompleted
	}
	return false
}

// Shift schedules one staff member for a date and time range.
type Shift struct {
	ShiftID      string      `json:"id"`
	ProfileID    int64       `json:"staff_profile_id"`
	TemplateID   int64       `json:"template_id,omitempty"`
	Date         string      `json:"date"`       // YYYY-MM-DD
	StartTime    string      `json:"start_time"` // HH:MM
	EndTime      string      `json:"end_time"`   // HH:MM
	BreakMinutes int         `json:"break_minutes"`
	Station      string      `json:"station,omitempty"`
	ShiftRole    string      `json:"role,omitempty"`
	Status       ShiftStatus `json:"status"`
	Overtime     bool        `json:"overtime"`
	Notes        string      `json:"notes,omitempty"`
	CreatedBy    int64       `json:"created_by,omitempty"`
	CreatedAt    time.Time   `json:"created_at,omitempty"`
}

// DurationHours returns the paid hours of the shift: end minus start minus
// break. Shifts that end past midnight wrap to the next day.
func (s Shift) DurationHours() float64 {
	start, errStart := time.Parse("15:04", s.StartTime)
	end, errEnd := time.Parse("15:04", s.EndTime)
	if errStart != nil || errEnd != nil {
		return 0
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start).Hours() - float64(s.BreakMinutes)/60
}

// LaborCostCents returns the cost of the shift at the given hourly rate.
func (s Shift) LaborCostCents(hourlyRateCents int64) int64 {
	return int64(s.DurationHours() * float64(hourlyRateCents))
}

// Overlaps reports whether two shifts on the same date share any minutes.
// Overnight wrap is intentionally not considered here; schedules are
// validated per calendar date.
func (s Shift) Overlaps(other Shift) bool {
	if s.Date != other.Date {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}
