package models

import "time"

const StatusWaiting = "waiting"

// WaitlistEntry is a request for a date that was already occupied when the
// client submitted. It is removed automatically once a booking for the same
// date and email is approved.
type WaitlistEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
