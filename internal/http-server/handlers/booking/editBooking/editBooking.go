package editBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/models"
)

type EditRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

type EditResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingEditor
type BookingEditor interface {
	EditBooking(ctx context.Context, id string, in ledger.EditInput) (*models.Booking, error, error)
}

func New(log *slog.Logger, editor BookingEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.editBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("booking_id", id))

		var req EditRequest

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

		booking, warn, err := editor.EditBooking(r.Context(), id, ledger.EditInput{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Notes: req.Notes,
		})
		if err != nil {
			log.Error("failed to edit booking", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, ledger.ErrImmutableState):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("approved booking cannot be edited"))
			case errors.Is(err, ledger.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to edit booking"))
			}
			return
		}

		log.Info("booking updated")

		responseOK(w, r, booking, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, EditResponse{
		Response: resp,
		Booking:  booking,
	})
}
