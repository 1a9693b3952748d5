package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingCalendar/internal/lib/logger/handlers/slogdiscard"
	"bookingCalendar/internal/models"
	"bookingCalendar/internal/storage"
)

func TestStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("save and load roundtrip", func(t *testing.T) {
		t.Parallel()

		s, err := New(t.TempDir(), slogdiscard.NewDiscardLogger())
		require.NoError(t, err)

		in := []models.Contact{{Name: "A", Phone: "1", Email: "a@x.com"}}
		require.NoError(t, s.Save(ctx, storage.KeyContacts, in))

		var out []models.Contact
		require.NoError(t, s.Load(ctx, storage.KeyContacts, &out))
		assert.Equal(t, in, out)
	})

	t.Run("absent key leaves the default", func(t *testing.T) {
		t.Parallel()

		s, err := New(t.TempDir(), slogdiscard.NewDiscardLogger())
		require.NoError(t, err)

		out := []models.Contact{{Email: "default@x.com"}}
		require.NoError(t, s.Load(ctx, storage.KeyContacts, &out))
		assert.Len(t, out, 1)
	})

	t.Run("malformed blob falls back to the default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s, err := New(dir, slogdiscard.NewDiscardLogger())
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(
			filepath.Join(dir, storage.KeyBookings+".json"), []byte("{not json"), 0o644))

		var out []models.Booking
		require.NoError(t, s.Load(ctx, storage.KeyBookings, &out))
		assert.Empty(t, out)
	})

	t.Run("wrong-shaped blob leaves the default untouched", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s, err := New(dir, slogdiscard.NewDiscardLogger())
		require.NoError(t, err)

		// Well-formed JSON whose second element cannot decode into a booking;
		// a plain unmarshal would leave the decoded prefix behind.
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, storage.KeyBookings+".json"), []byte(`[{"id":"a"},42]`), 0o644))

		out := []models.Booking{{ID: "keep"}}
		require.NoError(t, s.Load(ctx, storage.KeyBookings, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "keep", out[0].ID)
	})

	t.Run("save overwrites the previous blob", func(t *testing.T) {
		t.Parallel()

		s, err := New(t.TempDir(), slogdiscard.NewDiscardLogger())
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, storage.KeyWaitlist, []models.WaitlistEntry{{ID: "1"}}))
		require.NoError(t, s.Save(ctx, storage.KeyWaitlist, []models.WaitlistEntry{}))

		var out []models.WaitlistEntry
		require.NoError(t, s.Load(ctx, storage.KeyWaitlist, &out))
		assert.Empty(t, out)
	})
}
