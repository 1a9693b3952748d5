package getClientBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/models"
)

type ClientBookingsResponse struct {
	response.Response
	Bookings []models.Booking       `json:"bookings"`
	Waitlist []models.WaitlistEntry `json:"waitlist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClientBookingsLister
type ClientBookingsLister interface {
	BookingsByEmail(email string) ([]models.Booking, []models.WaitlistEntry)
}

func New(log *slog.Logger, lister ClientBookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getClientBookings.New"

		log = log.With(slog.String("op", op))

		email := r.URL.Query().Get("email")
		if email == "" {
			log.Error("email is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("email is required"))
			return
		}

		bookings, waitlist := lister.BookingsByEmail(email)

		log.Info("client bookings retrieved",
			slog.Int("bookings", len(bookings)),
			slog.Int("waitlist", len(waitlist)),
		)

		render.JSON(w, r, ClientBookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
			Waitlist: waitlist,
		})
	}
}
