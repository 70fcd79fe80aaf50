package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // sqlite driver
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// Store is the SQLite-backed contact directory and event log
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS organizations (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	phone_number    TEXT NOT NULL UNIQUE,
	emergency_phone TEXT NOT NULL,
	organization_id TEXT NOT NULL REFERENCES organizations (id),
	created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS sensors (
	id              TEXT PRIMARY KEY,
	organization_id TEXT NOT NULL REFERENCES organizations (id),
	room_code       TEXT NOT NULL,
	kind            TEXT NOT NULL,
	created_at      TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id              TEXT PRIMARY KEY,
	room_code       TEXT NOT NULL,
	kind            TEXT NOT NULL,
	timestamp       TIMESTAMP NOT NULL,
	organization_id TEXT NOT NULL REFERENCES organizations (id)
);

CREATE INDEX IF NOT EXISTS idx_events_room ON events (room_code, timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_events_org ON events (organization_id, timestamp DESC);
`

// Open opens the database at path and creates the schema if needed
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// modernc sqlite serializes writes per connection; a single
	// connection avoids SQLITE_BUSY under concurrent appends.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Info().Str("path", path).Msg("Database opened")

	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests to substitute
// the underlying driver.
func NewWithDB(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			return fmt.Errorf("failed to rollback: %s: %w", err.Error(), rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
