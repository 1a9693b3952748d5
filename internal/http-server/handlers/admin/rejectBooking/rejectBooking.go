package rejectBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/lib/logger/sl"
)

type RejectResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingRejecter
type BookingRejecter interface {
	RejectBooking(ctx context.Context, id string) (error, error)
}

// New removes a booking from the ledger entirely. Rejection is destructive;
// no record is retained.
func New(log *slog.Logger, rejecter BookingRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.rejectBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		warn, err := rejecter.RejectBooking(r.Context(), id)
		if err != nil {
			log.Error("failed to reject booking", sl.Err(err))

			if errors.Is(err, ledger.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to reject booking"))
			return
		}

		log.Info("booking rejected")

		responseOK(w, r, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, RejectResponse{
		Response: resp,
	})
}
