package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"bookingCalendar/internal/config"
	"bookingCalendar/internal/lib/logger/sl"
	"bookingCalendar/internal/storage"
)

// Store keeps the ledger blobs in a single key/value table. It honors the
// same keyed-JSON contract as the file store, so the ledger does not care
// which one it talks to.
type Store struct {
	DB  *sql.DB
	log *slog.Logger
}

func InitDB(dbCfg *config.Database, log *slog.Logger) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create blobs table: %w", err)
	}

	return &Store{
		DB:  db,
		log: log.With(slog.String("component", "storage/postgres")),
	}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) Load(ctx context.Context, key string, dest any) error {
	query := `
		SELECT value
		FROM blobs
		WHERE key = $1`

	var data []byte
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}

		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := storage.Decode(data, dest); err != nil {
		s.log.Warn("stored value is malformed, using default",
			slog.String("key", key), sl.Err(err))

		return nil
	}

	return nil
}

func (s *Store) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	query := `
		INSERT INTO blobs (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err = s.DB.ExecContext(ctx, query, key, data)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
