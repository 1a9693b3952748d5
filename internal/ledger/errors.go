package ledger

import "errors"

// Operation errors. All of them are caller-correctable; none are fatal to
// the process. Handlers map them to HTTP statuses with errors.Is.
var (
	// ErrValidation is returned when a required field is missing or a date
	// is malformed or in the past.
	ErrValidation = errors.New("validation failed")

	// ErrImmutableState is returned when a client edits an approved
	// booking. Approved bookings only change through admin actions.
	ErrImmutableState = errors.New("approved booking cannot be edited")

	// ErrAuthorization is returned when the email supplied with a cancel
	// request does not match the booking. This is a convenience gate, not
	// real authentication.
	ErrAuthorization = errors.New("email does not match booking")

	// ErrCollision is returned when an operation would put a second
	// occupant onto a date that is exclusively held by an approved booking.
	ErrCollision = errors.New("date is already booked")

	// ErrInvalidTransition is returned when an admin approves a booking
	// that is already approved.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDateAvailable is returned when a waitlist request targets a date
	// nobody occupies; the caller should submit a regular booking instead.
	ErrDateAvailable = errors.New("date is available")

	ErrBookingNotFound = errors.New("booking not found")
)
