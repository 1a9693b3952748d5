package deleteBooking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/admin/deleteBooking/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
)

func TestDeleteBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(m *mocks.BookingDeleter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success",
			bookingID: "b-1",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", mock.Anything, "b-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:      "Booking not found",
			bookingID: "missing",
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", mock.Anything, "missing").
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
			mockSetup: func(m *mocks.BookingDeleter) {
				m.On("DeleteBooking", mock.Anything, "b-1").
					Return(nil, errors.New("storage offline"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewBookingDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/admin/bookings/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/admin/bookings/"+tc.bookingID, nil)
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
