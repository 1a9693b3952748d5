package editBooking

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

	"bookingCalendar/internal/http-server/handlers/booking/editBooking/mocks"
	"bookingCalendar/internal/ledger"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
	"bookingCalendar/internal/models"
)

func TestEditBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{"name":"A","email":"a@x.com","phone":"1","notes":"updated"}`

	validInput := ledger.EditInput{
		Name:  "A",
		Email: "a@x.com",
		Phone: "1",
		Notes: "updated",
	}

	booking := &models.Booking{
		ID:        "b-1",
		StartDate: "2025-03-01",
		EndDate:   "2025-03-02",
		Name:      "A",
		Email:     "a@x.com",
		Phone:     "1",
		Notes:     "updated",
		Status:    models.StatusPending,
	}

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.BookingEditor)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			bookingID:   "b-1",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingEditor) {
				m.On("EditBooking", mock.Anything, "b-1", validInput).Return(booking, nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"notes":"updated"`)
			},
		},
		{
			name:           "Invalid email",
			bookingID:      "b-1",
			requestBody:    `{"name":"A","email":"not-an-email","phone":"1"}`,
			mockSetup:      func(m *mocks.BookingEditor) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "missing",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingEditor) {
				m.On("EditBooking", mock.Anything, "missing", validInput).
					Return(nil, nil, ledger.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "booking not found")
			},
		},
		{
			name:        "Approved booking is immutable",
			bookingID:   "b-1",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingEditor) {
				m.On("EditBooking", mock.Anything, "b-1", validInput).
					Return(nil, nil, ledger.ErrImmutableState)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "cannot be edited")
			},
		},
		{
			name:        "Internal error",
			bookingID:   "b-1",
			requestBody: validBody,
			mockSetup: func(m *mocks.BookingEditor) {
				m.On("EditBooking", mock.Anything, "b-1", validInput).
					Return(nil, nil, errors.New("storage offline"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEditor := mocks.NewBookingEditor(t)
			tc.mockSetup(mockEditor)

			router := chi.NewRouter()
			router.Put("/bookings/{id}", New(logger, mockEditor))

			req, err := http.NewRequest(http.MethodPut, "/bookings/"+tc.bookingID, bytes.NewBufferString(tc.requestBody))
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
