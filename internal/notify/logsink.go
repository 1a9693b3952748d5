package notify

import (
	"context"
	"fmt"
	"log/slog"
)

// LogSink simulates delivery by writing the rendered email (and, for client
// events, SMS) to the process log. Swapping in a real email/SMS sender means
// implementing Sink; nothing in the ledger changes.
type LogSink struct {
	log        *slog.Logger
	adminEmail string
	adminPhone string
}

func NewLogSink(log *slog.Logger, adminEmail, adminPhone string) *LogSink {
	return &LogSink{
		log:        log.With(slog.String("component", "notify/logsink")),
		adminEmail: adminEmail,
		adminPhone: adminPhone,
	}
}

func (s *LogSink) Notify(_ context.Context, kind Kind, p Payload) error {
	subject, message, ok := render(kind, p)
	if !ok {
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	switch kind.Audience() {
	case AudienceAdmin:
		s.log.Info("email to admin",
			slog.String("kind", string(kind)),
			slog.String("to", s.adminEmail),
			slog.String("subject", subject),
			slog.String("message", message),
		)

		if s.adminPhone != "" {
			s.log.Info("sms to admin",
				slog.String("kind", string(kind)),
				slog.String("to", s.adminPhone),
				slog.String("message", subject),
			)
		}
	case AudienceClient:
		s.log.Info("email to client",
			slog.String("kind", string(kind)),
			slog.String("to", p.Email),
			slog.String("subject", subject),
			slog.String("message", message),
		)

		s.log.Info("sms to client",
			slog.String("kind", string(kind)),
			slog.String("to", p.Phone),
			slog.String("message", smsLine(kind, p)),
		)
	}

	return nil
}

func render(kind Kind, p Payload) (subject, message string, ok bool) {
	details := fmt.Sprintf(
		"Date: %s\nClient: %s\nEmail: %s\nPhone: %s",
		p.DateDisplay, p.Name, p.Email, p.Phone,
	)
	if p.Notes != "" {
		details += "\nNotes: " + p.Notes
	}

	switch kind {
	case BookingRequested:
		return "New Booking Request - " + p.DateDisplay,
			"You have a new booking request.\n\n" + details +
				"\n\nPlease review and approve this booking in your admin dashboard.",
			true
	case BookingCancelled:
		return "Booking Cancelled - " + p.DateDisplay,
			"A booking has been cancelled.\n\n" + details +
				"\n\nThe date is now available for new bookings.",
			true
	case BookingUpdated:
		return "Booking Updated - " + p.DateDisplay,
			"A booking has been updated.\n\n" + details +
				"\n\nPlease review the updated details.",
			true
	case WaitlistRequested:
		return "New Waitlist Request - " + p.DateDisplay,
			"You have a new waitlist request.\n\n" + details +
				"\n\nThe client will be notified if this date becomes available.",
			true
	case BookingApproved:
		return "Booking Confirmed - " + p.DateDisplay,
			fmt.Sprintf(
				"Dear %s,\n\nYour booking has been confirmed.\n\nDate: %s\n\n"+
					"We look forward to serving you. If you need to reschedule or "+
					"cancel, please contact us at least 24 hours in advance.",
				p.Name, p.DateDisplay,
			),
			true
	case BookingRejected:
		return "Booking Request Update - " + p.DateDisplay,
			fmt.Sprintf(
				"Dear %s,\n\nWe are unable to accommodate your booking request for %s "+
					"as the date is no longer available.\n\nYou can view other available "+
					"dates in the booking calendar and submit a new request.",
				p.Name, p.DateDisplay,
			),
			true
	}

	return "", "", false
}

func smsLine(kind Kind, p Payload) string {
	if kind == BookingApproved {
		return fmt.Sprintf("Booking confirmed for %s. Check your email for details.", p.DateDisplay)
	}

	return fmt.Sprintf("Your booking request for %s was not approved. Check email for details.", p.DateDisplay)
}
