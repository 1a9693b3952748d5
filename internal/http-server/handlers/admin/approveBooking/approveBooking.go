package approveBooking

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
	"bookingCalendar/internal/models"
)

type ApproveResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingApprover
type BookingApprover interface {
	ApproveBooking(ctx context.Context, id string) (*models.Booking, error, error)
}

func New(log *slog.Logger, approver BookingApprover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.approveBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		booking, warn, err := approver.ApproveBooking(r.Context(), id)
		if err != nil {
			log.Error("failed to approve booking", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, ledger.ErrInvalidTransition):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking is already approved"))
			case errors.Is(err, ledger.ErrCollision):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("another approved booking already holds this date"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to approve booking"))
			}
			return
		}

		log.Info("booking approved")

		responseOK(w, r, booking, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, ApproveResponse{
		Response: resp,
		Booking:  booking,
	})
}
