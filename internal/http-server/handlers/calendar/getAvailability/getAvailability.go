package getAvailability

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/lib/logger/sl"
)

type AvailabilityResponse struct {
	response.Response
	Day ledger.DayAvailability `json:"day"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityGetter
type AvailabilityGetter interface {
	Availability(date string) (ledger.DayAvailability, error)
}

func New(log *slog.Logger, getter AvailabilityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.getAvailability.New"

		log = log.With(slog.String("op", op))

		date := chi.URLParam(r, "date")
		if date == "" {
			log.Error("date is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("date is required"))
			return
		}

		day, err := getter.Availability(date)
		if err != nil {
			log.Error("failed to resolve availability", sl.Err(err))

			if errors.Is(err, ledger.ErrValidation) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date format, expected YYYY-MM-DD"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to resolve availability"))
			return
		}

		log.Info("availability resolved",
			slog.String("date", date),
			slog.String("status", string(day.Status)),
		)

		render.JSON(w, r, AvailabilityResponse{
			Response: response.OK(),
			Day:      day,
		})
	}
}
