package models

// Contact is a directory entry keyed by email, kept for form autofill.
// It carries no identity guarantees.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// DateStatus is the computed occupancy of a single calendar date.
type DateStatus string

const (
	DateAvailable DateStatus = "available"
	DatePending   DateStatus = "pending"
	DateApproved  DateStatus = "approved"
	DateWaiting   DateStatus = "waiting"
)
