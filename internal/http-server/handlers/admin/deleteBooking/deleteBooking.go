package deleteBooking

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

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(ctx context.Context, id string) (error, error)
}

// New is the generic admin delete: it removes a booking of any status,
// approved included.
func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		warn, err := deleter.DeleteBooking(r.Context(), id)
		if err != nil {
			log.Error("failed to delete booking", sl.Err(err))

			if errors.Is(err, ledger.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted")

		responseOK(w, r, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, DeleteResponse{
		Response: resp,
	})
}
