package exportData

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/admin/exportData/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
	"bookingCalendar/internal/models"
)

func TestExportDataHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	exportedAt := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	snapshot := ledger.Snapshot{
		Bookings: []models.Booking{
			{ID: "b-1", StartDate: "2025-03-01", EndDate: "2025-03-01", Name: "A", Email: "a@x.com", Status: models.StatusApproved},
		},
		Waitlist: []models.WaitlistEntry{
			{ID: "w-1", Date: "2025-03-01", Name: "B", Email: "b@y.com", Status: models.StatusWaiting},
		},
		Contacts: []models.Contact{
			{Name: "A", Email: "a@x.com", Phone: "1"},
			{Name: "B", Email: "b@y.com", Phone: "2"},
		},
		ExportedAt: exportedAt,
	}

	mockExporter := mocks.NewExporter(t)
	mockExporter.On("Export").Return(snapshot)

	handler := New(logger, mockExporter)

	req, err := http.NewRequest(http.MethodGet, "/admin/export", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t,
		"attachment; filename=bookings-export-2025-02-01.json",
		rr.Header().Get("Content-Disposition"),
	)

	body := rr.Body.String()
	assert.Contains(t, body, `"id":"b-1"`)
	assert.Contains(t, body, `"id":"w-1"`)
	assert.Contains(t, body, `"email":"b@y.com"`)
	assert.Contains(t, body, `"exported_at"`)
}
