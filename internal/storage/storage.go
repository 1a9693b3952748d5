package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// Blob keys used by the ledger.
const (
	KeyBookings = "bookings"
	KeyWaitlist = "waitlist"
	KeyContacts = "contacts"
)

// Store persists keyed JSON blobs. Load leaves dest untouched when the key
// is absent; a malformed stored value is replaced by the default the same
// way, but implementations must log it rather than hide it.
type Store interface {
	Load(ctx context.Context, key string, dest any) error
	Save(ctx context.Context, key string, value any) error
}

// Decode unmarshals data into dest all-or-nothing. json.Unmarshal can leave
// dest partially populated when well-formed JSON has the wrong shape, so the
// decode runs against a fresh value and dest is only written on success.
func Decode(data []byte, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("dest must be a non-nil pointer")
	}

	tmp := reflect.New(v.Elem().Type())
	if err := json.Unmarshal(data, tmp.Interface()); err != nil {
		return err
	}

	v.Elem().Set(tmp.Elem())

	return nil
}
