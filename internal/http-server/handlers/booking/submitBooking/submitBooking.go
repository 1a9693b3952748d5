package submitBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/models"
)

type BookingRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Notes     string `json:"notes,omitempty"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSubmitter
type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, in ledger.SubmitInput) (*models.Booking, error, error)
}

func New(log *slog.Logger, submitter BookingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.submitBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		booking, warn, err := submitter.SubmitBooking(r.Context(), ledger.SubmitInput{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Notes:     req.Notes,
		})
		if err != nil {
			log.Error("failed to submit booking", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, ledger.ErrCollision):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("date is already booked, join the waitlist instead"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit booking"))
			}
			return
		}

		log.Info("booking submitted", slog.String("id", booking.ID))

		responseOK(w, r, booking, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, BookingResponse{
		Response: resp,
		Booking:  booking,
	})
}
