package getContacts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"bookingCalendar/internal/lib/api/response"
	"bookingCalendar/internal/models"
)

type ContactsResponse struct {
	response.Response
	Contacts []models.Contact `json:"contacts"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ContactsLister
type ContactsLister interface {
	Contacts(query string) []models.Contact
}

// New serves the autofill suggestions for the booking form. The optional q
// parameter narrows by name or email.
func New(log *slog.Logger, lister ContactsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.getContacts.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query().Get("q")

		contacts := lister.Contacts(query)

		log.Info("contacts retrieved", slog.Int("count", len(contacts)))

		render.JSON(w, r, ContactsResponse{
			Response: response.OK(),
			Contacts: contacts,
		})
	}
}
