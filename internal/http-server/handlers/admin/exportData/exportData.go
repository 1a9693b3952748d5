package exportData

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Exporter
type Exporter interface {
	Export() ledger.Snapshot
}

// New serves the full ledger snapshot as a JSON download.
func New(log *slog.Logger, exporter Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.exportData.New"

		log = log.With(slog.String("op", op))

		snapshot := exporter.Export()

		filename := fmt.Sprintf("bookings-export-%s.json",
			snapshot.ExportedAt.Format(models.DateLayout))
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)

		log.Info("ledger exported",
			slog.Int("bookings", len(snapshot.Bookings)),
			slog.Int("waitlist", len(snapshot.Waitlist)),
			slog.Int("contacts", len(snapshot.Contacts)),
		)

		render.JSON(w, r, snapshot)
	}
}
