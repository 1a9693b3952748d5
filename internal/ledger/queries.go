package ledger

import (
	"fmt"
	"strings"
	"time"

	"bookingCalendar/internal/models"
)

// DayAvailability is the computed occupancy of one calendar date.
// Selectable mirrors what the calendar grid lets a client click: not in the
// past and not exclusively held by an approved booking.
type DayAvailability struct {
	Date       string            `json:"date"`
	Status     models.DateStatus `json:"status"`
	Past       bool              `json:"past"`
	Selectable bool              `json:"selectable"`
}

// Availability resolves the occupancy of a single date. Approved bookings
// win over pending ones, pending ones over waitlist entries.
func (l *Ledger) Availability(date string) (DayAvailability, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return DayAvailability{}, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.dayAvailability(date), nil
}

// Calendar resolves every day of a month ("2006-01") at once.
func (l *Ledger) Calendar(month string) ([]DayAvailability, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid month %q", ErrValidation, month)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	days := make([]DayAvailability, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, l.dayAvailability(d.Format(models.DateLayout)))
	}

	return days, nil
}

func (l *Ledger) dayAvailability(date string) DayAvailability {
	status := models.DateAvailable

	for _, b := range l.bookings {
		if !b.Covers(date) {
			continue
		}
		if b.Status == models.StatusApproved {
			status = models.DateApproved
			break
		}
		status = models.DatePending
	}

	if status == models.DateAvailable {
		for _, e := range l.waitlist {
			if e.Date == date {
				status = models.DateWaiting
				break
			}
		}
	}

	past := date < l.today()

	return DayAvailability{
		Date:       date,
		Status:     status,
		Past:       past,
		Selectable: !past && status != models.DateApproved,
	}
}

// BookingsByEmail returns the client's bookings and waitlist entries.
func (l *Ledger) BookingsByEmail(email string) ([]models.Booking, []models.WaitlistEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var bookings []models.Booking
	for _, b := range l.bookings {
		if b.Email == email {
			bookings = append(bookings, b)
		}
	}

	var entries []models.WaitlistEntry
	for _, e := range l.waitlist {
		if e.Email == email {
			entries = append(entries, e)
		}
	}

	return bookings, entries
}

// Contacts returns directory entries whose name or email contains the
// query, case-insensitively. An empty query returns the whole directory.
func (l *Ledger) Contacts(query string) []models.Contact {
	l.mu.Lock()
	defer l.mu.Unlock()

	if query == "" {
		return append([]models.Contact(nil), l.contacts...)
	}

	q := strings.ToLower(query)

	var matched []models.Contact
	for _, c := range l.contacts {
		if strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Name), q) {
			matched = append(matched, c)
		}
	}

	return matched
}

// Stats are the dashboard counters.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Waitlist int `json:"waitlist"`
	Contacts int `json:"contacts"`
}

// Dashboard returns the counters plus full booking and waitlist listings
// for the admin view.
func (l *Ledger) Dashboard() (Stats, []models.Booking, []models.WaitlistEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := Stats{
		Total:    len(l.bookings),
		Waitlist: len(l.waitlist),
		Contacts: len(l.contacts),
	}

	for _, b := range l.bookings {
		switch b.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusApproved:
			stats.Approved++
		}
	}

	bookings := append([]models.Booking(nil), l.bookings...)
	entries := append([]models.WaitlistEntry(nil), l.waitlist...)

	return stats, bookings, entries
}
