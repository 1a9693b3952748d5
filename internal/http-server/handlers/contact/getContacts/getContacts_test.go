package getContacts

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/http-server/handlers/contact/getContacts/mocks"
	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
	"bookingCalendar/internal/models"
)

func TestGetContactsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	all := []models.Contact{
		{Name: "Alice", Email: "alice@x.com", Phone: "1"},
		{Name: "Bob", Email: "bob@y.com", Phone: "2"},
	}

	testCases := []struct {
		name      string
		target    string
		mockSetup func(m *mocks.ContactsLister)
		checkBody func(t *testing.T, body string)
	}{
		{
			name:   "All contacts",
			target: "/contacts",
			mockSetup: func(m *mocks.ContactsLister) {
				m.On("Contacts", "").Return(all)
			},
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"email":"alice@x.com"`)
				assert.Contains(t, body, `"email":"bob@y.com"`)
			},
		},
		{
			name:   "Filtered by query",
			target: "/contacts?q=ali",
			mockSetup: func(m *mocks.ContactsLister) {
				m.On("Contacts", "ali").Return(all[:1])
			},
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"email":"alice@x.com"`)
				assert.NotContains(t, body, `"email":"bob@y.com"`)
			},
		},
		{
			name:   "No matches",
			target: "/contacts?q=zzz",
			mockSetup: func(m *mocks.ContactsLister) {
				m.On("Contacts", "zzz").Return([]models.Contact{})
			},
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"contacts":[]`)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewContactsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.target, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			tc.checkBody(t, rr.Body.String())
		})
	}
}
