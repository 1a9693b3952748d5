package models

import "time"

// DateLayout is the calendar date format used everywhere in the ledger.
// ISO dates compare correctly as strings, which the availability logic
// relies on.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
)

type Booking struct {
	ID        string        `json:"id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Notes     string        `json:"notes,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Covers reports whether the booking occupies the given date. Ranges are
// inclusive; a single-day booking has StartDate == EndDate.
func (b Booking) Covers(date string) bool {
	return b.StartDate <= date && date <= b.EndDate
}

// Overlaps reports whether the booking shares at least one date with the
// inclusive range [start, end].
func (b Booking) Overlaps(start, end string) bool {
	return b.StartDate <= end && start <= b.EndDate
}
