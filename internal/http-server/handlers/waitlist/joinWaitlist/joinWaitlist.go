package joinWaitlist

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

type WaitlistRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

type WaitlistResponse struct {
	response.Response
	Entry *models.WaitlistEntry `json:"entry,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistSubmitter
type WaitlistSubmitter interface {
	SubmitWaitlist(ctx context.Context, in ledger.SubmitInput) (*models.WaitlistEntry, error, error)
}

func New(log *slog.Logger, submitter WaitlistSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.waitlist.joinWaitlist.New"

		log = log.With(slog.String("op", op))

		var req WaitlistRequest

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

		entry, warn, err := submitter.SubmitWaitlist(r.Context(), ledger.SubmitInput{
			StartDate: req.Date,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Notes:     req.Notes,
		})
		if err != nil {
			log.Error("failed to join waitlist", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrValidation):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, ledger.ErrDateAvailable):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("date is available, submit a booking instead"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join waitlist"))
			}
			return
		}

		log.Info("waitlist entry created", slog.String("id", entry.ID))

		responseOK(w, r, entry, warn)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, entry *models.WaitlistEntry, warn error) {
	resp := response.OK()
	if warn != nil {
		resp = response.Warn(warn.Error())
	}

	render.JSON(w, r, WaitlistResponse{
		Response: resp,
		Entry:    entry,
	})
}
