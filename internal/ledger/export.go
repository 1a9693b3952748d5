package ledger

import (
	"time"

	"bookingCalendar/internal/models"
)

// Snapshot is the downloadable export of the whole ledger.
type Snapshot struct {
	Bookings   []models.Booking       `json:"bookings"`
	Waitlist   []models.WaitlistEntry `json:"waitlist"`
	Contacts   []models.Contact       `json:"contacts"`
	ExportedAt time.Time              `json:"exported_at"`
}

// Export copies the current ledger state. Pure read, no mutation.
func (l *Ledger) Export() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Snapshot{
		Bookings:   append([]models.Booking{}, l.bookings...),
		Waitlist:   append([]models.WaitlistEntry{}, l.waitlist...),
		Contacts:   append([]models.Contact{}, l.contacts...),
		ExportedAt: l.now(),
	}
}
