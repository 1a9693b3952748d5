package notify

import (
	"context"

	"bookingCalendar/internal/models"
)

// Kind identifies a notification event. The set is closed: every
// state-changing ledger operation maps to exactly one kind.
type Kind string

const (
	BookingRequested  Kind = "BOOKING_REQUESTED"
	BookingCancelled  Kind = "BOOKING_CANCELLED"
	BookingUpdated    Kind = "BOOKING_UPDATED"
	WaitlistRequested Kind = "WAITLIST_REQUESTED"
	BookingApproved   Kind = "BOOKING_APPROVED"
	BookingRejected   Kind = "BOOKING_REJECTED"
)

type Audience string

const (
	AudienceAdmin  Audience = "admin"
	AudienceClient Audience = "client"
)

// Audience returns the fixed delivery target for the kind. Request-side
// events go to the admin, decision-side events go back to the client.
func (k Kind) Audience() Audience {
	switch k {
	case BookingApproved, BookingRejected:
		return AudienceClient
	default:
		return AudienceAdmin
	}
}

// Payload carries the template fields for a notification.
type Payload struct {
	DateDisplay string
	Name        string
	Email       string
	Phone       string
	Notes       string
}

// Sink delivers notifications. Delivery is fire-and-forget: the ledger
// commits its mutation first and never rolls it back on a sink error.
type Sink interface {
	Notify(ctx context.Context, kind Kind, p Payload) error
}

// FromBooking builds a payload from a booking.
func FromBooking(b models.Booking) Payload {
	return Payload{
		DateDisplay: DateDisplay(b.StartDate, b.EndDate),
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Notes:       b.Notes,
	}
}

// FromWaitlistEntry builds a payload from a waitlist entry.
func FromWaitlistEntry(e models.WaitlistEntry) Payload {
	return Payload{
		DateDisplay: DateDisplay(e.Date, e.Date),
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Notes:       e.Notes,
	}
}

// DateDisplay renders a single date as-is and a range as "From X To Y".
func DateDisplay(start, end string) string {
	if start == end {
		return start
	}

	return "From " + start + " To " + end
}
