package rejectBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/admin/rejectBooking/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
)

func TestRejectBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingRejecter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "b-1",
			mockSetup: func(m *mocks.BookingRejecter) {
				m.On("RejectBooking", mock.Anything, "b-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			mockSetup: func(m *mocks.BookingRejecter) {
				m.On("RejectBooking", mock.Anything, "missing").
					Return(nil, ledger.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "booking not found")
			},
		},
		{
			name:      "Internal error",
			bookingID: "b-1",
			mockSetup: func(m *mocks.BookingRejecter) {
				m.On("RejectBooking", mock.Anything, "b-1").
					Return(nil, errors.New("storage offline"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:      "Rejected with notification warning",
			bookingID: "b-1",
			mockSetup: func(m *mocks.BookingRejecter) {
				m.On("RejectBooking", mock.Anything, "b-1").
					Return(errors.New("notification not delivered"), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"warning":"notification not delivered"`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRejecter := mocks.NewBookingRejecter(t)
			tc.mockSetup(mockRejecter)

			router := chi.NewRouter()
			router.Post("/admin/bookings/{id}/reject", New(logger, mockRejecter))

			req, err := http.NewRequest(http.MethodPost, "/admin/bookings/"+tc.bookingID+"/reject", nil)
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
