package getDashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/models"
)

type DashboardResponse struct {
	response.Response
	Stats    ledger.Stats           `json:"stats"`
	Bookings []models.Booking       `json:"bookings"`
	Waitlist []models.WaitlistEntry `json:"waitlist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	Dashboard() (ledger.Stats, []models.Booking, []models.WaitlistEntry)
}

// New serves the admin view: counters plus the full booking and waitlist
// listings. The status query parameter narrows the booking list the way the
// dashboard tabs do.
func New(log *slog.Logger, getter DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.getDashboard.New"

		log = log.With(slog.String("op", op))

		stats, bookings, waitlist := getter.Dashboard()

		if status := r.URL.Query().Get("status"); status != "" {
			filtered := make([]models.Booking, 0, len(bookings))
			for _, b := range bookings {
				if string(b.Status) == status {
					filtered = append(filtered, b)
				}
			}
			bookings = filtered
		}

		log.Info("dashboard retrieved",
			slog.Int("bookings", len(bookings)),
			slog.Int("waitlist", len(waitlist)),
		)

		render.JSON(w, r, DashboardResponse{
			Response: response.OK(),
			Stats:    stats,
			Bookings: bookings,
			Waitlist: waitlist,
		})
	}
}
