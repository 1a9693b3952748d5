package getCalendar

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/lib/logger/sl"
)

type CalendarResponse struct {
	response.Response
	Month string                   `json:"month"`
	Days  []ledger.DayAvailability `json:"days"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CalendarGetter
type CalendarGetter interface {
	Calendar(month string) ([]ledger.DayAvailability, error)
}

func New(log *slog.Logger, getter CalendarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.getCalendar.New"

		log = log.With(slog.String("op", op))

		month := r.URL.Query().Get("month")
		if month == "" {
			log.Error("month is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("month is required"))
			return
		}

		days, err := getter.Calendar(month)
		if err != nil {
			log.Error("failed to build calendar", sl.Err(err))

			if errors.Is(err, ledger.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid month format, expected YYYY-MM"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build calendar"))
			return
		}

		log.Info("calendar built", slog.String("month", month), slog.Int("days", len(days)))

		render.JSON(w, r, CalendarResponse{
			Response: response.OK(),
			Month:    month,
			Days:     days,
		})
	}
}
