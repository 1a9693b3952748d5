package getAvailability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/calendar/getAvailability/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
	"bookingCalendar/internal/models"
)

func TestGetAvailabilityHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		date           string
		mockSetup      func(m *mocks.AvailabilityGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Available date",
			date: "2025-03-01",
			mockSetup: func(m *mocks.AvailabilityGetter) {
				m.On("Availability", "2025-03-01").Return(ledger.DayAvailability{
					Date:       "2025-03-01",
					Status:     models.DateAvailable,
					Selectable: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"available"`)
				assert.Contains(t, body, `"selectable":true`)
			},
		},
		{
			name: "Approved date",
			date: "2025-03-05",
			mockSetup: func(m *mocks.AvailabilityGetter) {
				m.On("Availability", "2025-03-05").Return(ledger.DayAvailability{
					Date:   "2025-03-05",
					Status: models.DateApproved,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"approved"`)
				assert.Contains(t, body, `"selectable":false`)
			},
		},
		{
			name: "Past date is not selectable",
			date: "2020-01-01",
			mockSetup: func(m *mocks.AvailabilityGetter) {
				m.On("Availability", "2020-01-01").Return(ledger.DayAvailability{
					Date:   "2020-01-01",
					Status: models.DateAvailable,
					Past:   true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"past":true`)
				assert.Contains(t, body, `"selectable":false`)
			},
		},
		{
			name: "Invalid date format",
			date: "03-01-2025",
			mockSetup: func(m *mocks.AvailabilityGetter) {
				m.On("Availability", "03-01-2025").
					Return(ledger.DayAvailability{}, ledger.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid date format")
			},
		},
		{
			name: "Internal error",
			date: "2025-03-01",
			mockSetup: func(m *mocks.AvailabilityGetter) {
				m.On("Availability", "2025-03-01").
					Return(ledger.DayAvailability{}, errors.New("unexpected"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewAvailabilityGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/availability/{date}", New(logger, mockGetter))

			req, err := http.NewRequest(http.MethodGet, "/availability/"+tc.date, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
