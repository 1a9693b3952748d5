package cancelBooking

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/booking/cancelBooking/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{"email":"a@x.com"}`

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			bookingID:   "b-1",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", mock.Anything, "b-1", "a@x.com").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Missing email",
			bookingID:      "b-1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Email mismatch",
			bookingID:   "b-1",
			requestBody: `{"email":"intruder@x.com"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", mock.Anything, "b-1", "intruder@x.com").
					Return(nil, ledger.ErrAuthorization)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "email does not match booking")
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "missing",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", mock.Anything, "missing", "a@x.com").
					Return(nil, ledger.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "Cancelled with notification warning",
			bookingID:   "b-1",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("CancelBooking", mock.Anything, "b-1", "a@x.com").
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

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			router := chi.NewRouter()
			router.Post("/bookings/{id}/cancel", New(logger, mockCanceller))

			req, err := http.NewRequest(http.MethodPost, "/bookings/"+tc.bookingID+"/cancel", bytes.NewBufferString(tc.requestBody))
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
