package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/storage"
)

// Store keeps one JSON file per key under a data directory. It is the
// default driver and plays the role the browser's local storage played in
// the original calendar: last write wins, no cross-process coordination.
type Store struct {
	dir string
	log *slog.Logger
}

func New(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &Store{
		dir: dir,
		log: log.With(slog.String("component", "storage/jsonfile")),
	}, nil
}

func (s *Store) Load(_ context.Context, key string, dest any) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := storage.Decode(data, dest); err != nil {
		// A corrupt blob falls back to the caller's default.
		s.log.Warn("stored value is malformed, using default",
			slog.String("key", key), sl.Err(err))

		return nil
	}

	return nil
}

func (s *Store) Save(_ context.Context, key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}

	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
