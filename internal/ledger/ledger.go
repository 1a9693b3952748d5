package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/models"
	"bookingCalendar/internal/notify"
	"bookingCalendar/internal/storage"
)

// Ledger owns the bookings, the waitlist and the contact directory, and
// applies every state transition. Each mutating operation follows the same
// sequence: mutate in memory, persist the blobs, then attempt exactly one
// notification. Persist and notify failures never unwind the mutation; they
// come back as the separate warn value so callers can surface them softly.
type Ledger struct {
	mu    sync.Mutex
	log   *slog.Logger
	store storage.Store
	sink  notify.Sink
	now   func() time.Time

	bookings []models.Booking
	waitlist []models.WaitlistEntry
	contacts []models.Contact
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithClock overrides the time source, mainly for tests around the
// past-date rule.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(log *slog.Logger, store storage.Store, sink notify.Sink, opts ...Option) *Ledger {
	l := &Ledger{
		log:   log.With(slog.String("component", "ledger")),
		store: store,
		sink:  sink,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load reads the three blobs from the store. Called once at startup; an
// absent or corrupt blob leaves the collection empty.
func (l *Ledger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.store.Load(ctx, storage.KeyBookings, &l.bookings); err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}
	if err := l.store.Load(ctx, storage.KeyWaitlist, &l.waitlist); err != nil {
		return fmt.Errorf("failed to load waitlist: %w", err)
	}
	if err := l.store.Load(ctx, storage.KeyContacts, &l.contacts); err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	l.log.Info("ledger loaded",
		slog.Int("bookings", len(l.bookings)),
		slog.Int("waitlist", len(l.waitlist)),
		slog.Int("contacts", len(l.contacts)),
	)

	return nil
}

// Save writes all three blobs. Called once at shutdown; every mutating
// operation already persists on its own.
func (l *Ledger) Save(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.persist(ctx)
}

// SubmitInput carries a client submission for a booking or a waitlist
// entry. EndDate may be empty for a single-day booking.
type SubmitInput struct {
	StartDate string
	EndDate   string
	Name      string
	Email     string
	Phone     string
	Notes     string
}

// SubmitBooking creates a pending booking. The date range must not touch a
// date held by an approved booking; such submissions must take the waitlist
// path instead. Several pending bookings may share a date - the first admin
// approval wins.
func (l *Ledger) SubmitBooking(ctx context.Context, in SubmitInput) (*models.Booking, error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start, end, err := l.validateSubmission(in)
	if err != nil {
		return nil, nil, err
	}

	for _, b := range l.bookings {
		if b.Status == models.StatusApproved && b.Overlaps(start, end) {
			return nil, nil, fmt.Errorf("%w: %s", ErrCollision, b.StartDate)
		}
	}

	booking := models.Booking{
		ID:        uuid.NewString(),
		StartDate: start,
		EndDate:   end,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Status:    models.StatusPending,
		CreatedAt: l.now(),
	}

	l.bookings = append(l.bookings, booking)
	l.rememberContact(in.Name, in.Phone, in.Email)

	warn := l.commit(ctx, notify.BookingRequested, notify.FromBooking(booking))

	l.log.Info("booking submitted",
		slog.String("id", booking.ID),
		slog.String("date", notify.DateDisplay(start, end)),
	)

	return &booking, warn, nil
}

// SubmitWaitlist creates a waiting entry for a date that is already
// occupied by a pending or approved booking.
func (l *Ledger) SubmitWaitlist(ctx context.Context, in SubmitInput) (*models.WaitlistEntry, error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	date, _, err := l.validateSubmission(in)
	if err != nil {
		return nil, nil, err
	}

	occupied := false
	for _, b := range l.bookings {
		if b.Covers(date) {
			occupied = true
			break
		}
	}
	if !occupied {
		return nil, nil, fmt.Errorf("%w: %s", ErrDateAvailable, date)
	}

	entry := models.WaitlistEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		Status:    models.StatusWaiting,
		CreatedAt: l.now(),
	}

	l.waitlist = append(l.waitlist, entry)
	l.rememberContact(in.Name, in.Phone, in.Email)

	warn := l.commit(ctx, notify.WaitlistRequested, notify.FromWaitlistEntry(entry))

	l.log.Info("waitlist entry created",
		slog.String("id", entry.ID),
		slog.String("date", date),
	)

	return &entry, warn, nil
}

// EditInput carries the client-editable fields of a booking.
type EditInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// EditBooking overwrites the contact fields of a pending booking and puts
// it back into the approval queue. Approved bookings are immutable from the
// client side.
func (l *Ledger) EditBooking(ctx context.Context, id string, in EditInput) (*models.Booking, error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.findBooking(id)
	if !ok {
		return nil, nil, ErrBookingNotFound
	}

	if l.bookings[i].Status == models.StatusApproved {
		return nil, nil, ErrImmutableState
	}

	if err := validateContact(in.Name, in.Email, in.Phone); err != nil {
		return nil, nil, err
	}

	l.bookings[i].Name = in.Name
	l.bookings[i].Email = in.Email
	l.bookings[i].Phone = in.Phone
	l.bookings[i].Notes = in.Notes
	l.bookings[i].Status = models.StatusPending

	booking := l.bookings[i]

	warn := l.commit(ctx, notify.BookingUpdated, notify.FromBooking(booking))

	l.log.Info("booking updated", slog.String("id", booking.ID))

	return &booking, warn, nil
}

// CancelBooking removes a booking on behalf of the client. The supplied
// email must match the booking exactly; this is the only identity check in
// the system and it is not cryptographically meaningful.
func (l *Ledger) CancelBooking(ctx context.Context, id, email string) (error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.findBooking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}

	if l.bookings[i].Email != email {
		return nil, ErrAuthorization
	}

	booking := l.bookings[i]
	l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)

	warn := l.commit(ctx, notify.BookingCancelled, notify.FromBooking(booking))

	l.log.Info("booking cancelled", slog.String("id", booking.ID))

	return warn, nil
}

// ApproveBooking marks a pending booking approved, making its dates
// exclusive, and promotes the waitlist: every entry matching the booking's
// (start date, email) is removed.
func (l *Ledger) ApproveBooking(ctx context.Context, id string) (*models.Booking, error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.findBooking(id)
	if !ok {
		return nil, nil, ErrBookingNotFound
	}

	if l.bookings[i].Status == models.StatusApproved {
		return nil, nil, fmt.Errorf("%w: booking is already approved", ErrInvalidTransition)
	}

	for j, b := range l.bookings {
		if j != i && b.Status == models.StatusApproved &&
			b.Overlaps(l.bookings[i].StartDate, l.bookings[i].EndDate) {
			return nil, nil, fmt.Errorf("%w: %s", ErrCollision, b.StartDate)
		}
	}

	l.bookings[i].Status = models.StatusApproved
	booking := l.bookings[i]

	kept := l.waitlist[:0]
	promoted := 0
	for _, e := range l.waitlist {
		if e.Date == booking.StartDate && e.Email == booking.Email {
			promoted++
			continue
		}
		kept = append(kept, e)
	}
	l.waitlist = kept

	warn := l.commit(ctx, notify.BookingApproved, notify.FromBooking(booking))

	l.log.Info("booking approved",
		slog.String("id", booking.ID),
		slog.Int("waitlist_promoted", promoted),
	)

	return &booking, warn, nil
}

// RejectBooking removes a pending booking from the ledger. Rejection is
// destructive: nothing is retained for audit. Waitlist entries stay put.
func (l *Ledger) RejectBooking(ctx context.Context, id string) (error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.findBooking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}

	booking := l.bookings[i]
	l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)

	warn := l.commit(ctx, notify.BookingRejected, notify.FromBooking(booking))

	l.log.Info("booking rejected", slog.String("id", booking.ID))

	return warn, nil
}

// DeleteBooking is the generic admin delete. It accepts any status,
// including approved, and notifies the admin sink the same way a
// cancellation would.
func (l *Ledger) DeleteBooking(ctx context.Context, id string) (error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.findBooking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}

	booking := l.bookings[i]
	l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)

	warn := l.commit(ctx, notify.BookingCancelled, notify.FromBooking(booking))

	l.log.Info("booking deleted",
		slog.String("id", booking.ID),
		slog.String("status", string(booking.Status)),
	)

	return warn, nil
}

// persist writes all three blobs while the caller holds the mutex.
func (l *Ledger) persist(ctx context.Context) error {
	if err := l.store.Save(ctx, storage.KeyBookings, l.bookings); err != nil {
		return fmt.Errorf("failed to save bookings: %w", err)
	}
	if err := l.store.Save(ctx, storage.KeyWaitlist, l.waitlist); err != nil {
		return fmt.Errorf("failed to save waitlist: %w", err)
	}
	if err := l.store.Save(ctx, storage.KeyContacts, l.contacts); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}

	return nil
}

// commit runs the persist-then-notify tail of a mutation. Failures of
// either step are downgraded to a warning; the in-memory mutation stands.
func (l *Ledger) commit(ctx context.Context, kind notify.Kind, p notify.Payload) error {
	var warn error

	if err := l.persist(ctx); err != nil {
		l.log.Error("failed to persist ledger", sl.Err(err))
		warn = errors.Join(warn, err)
	}

	if err := l.sink.Notify(ctx, kind, p); err != nil {
		l.log.Warn("failed to deliver notification",
			slog.String("kind", string(kind)), sl.Err(err))
		warn = errors.Join(warn, fmt.Errorf("notification not delivered: %w", err))
	}

	return warn
}

func (l *Ledger) findBooking(id string) (int, bool) {
	for i, b := range l.bookings {
		if b.ID == id {
			return i, true
		}
	}

	return 0, false
}

// rememberContact adds the email to the contact directory on first sight.
// Existing entries are left alone; the directory is an autofill cache, not
// an identity record.
func (l *Ledger) rememberContact(name, phone, email string) {
	for _, c := range l.contacts {
		if c.Email == email {
			return
		}
	}

	l.contacts = append(l.contacts, models.Contact{
		Name:  name,
		Phone: phone,
		Email: email,
	})
}

func (l *Ledger) validateSubmission(in SubmitInput) (start, end string, err error) {
	if err := validateContact(in.Name, in.Email, in.Phone); err != nil {
		return "", "", err
	}

	start = in.StartDate
	end = in.EndDate
	if end == "" {
		end = start
	}

	if _, err := time.Parse(models.DateLayout, start); err != nil {
		return "", "", fmt.Errorf("%w: invalid start date %q", ErrValidation, start)
	}
	if _, err := time.Parse(models.DateLayout, end); err != nil {
		return "", "", fmt.Errorf("%w: invalid end date %q", ErrValidation, end)
	}
	if end < start {
		return "", "", fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}

	if start < l.today() {
		return "", "", fmt.Errorf("%w: date is in the past", ErrValidation)
	}

	return start, end, nil
}

func validateContact(name, email, phone string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}

	return nil
}

func (l *Ledger) today() string {
	return l.now().Format(models.DateLayout)
}
