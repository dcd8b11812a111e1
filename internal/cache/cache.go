// Package cache is the local SQLite snapshot store. The API owns all durable
// state; this cache only remembers the last fetched snapshot per venue and
// kind so the app renders instantly on launch and degrades to read-only
// when the network is gone.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    venue      TEXT NOT NULL,
    kind       TEXT NOT NULL,
    payload    TEXT NOT NULL,
    fetched_at TEXT NOT NULL,
    PRIMARY KEY (venue, kind)
);
`

// Snapshot kinds.
const (
	KindFloorPlan   = "floor_plan"
	KindServers     = "servers"
	KindAssignments = "server_assignments"
	KindWaitlist    = "waitlist"
	KindGuests      = "guests"
	KindEvents      = "events"
	KindGiftCards   = "gift_cards"
)

// ErrMiss is returned when no snapshot of the requested kind exists.
var ErrMiss = errors.New("cache miss")

// Store wraps the snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database and initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping cache: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a snapshot, replacing any previous one of the same kind.
func (s *Store) Put(venue, kind string, v any, fetchedAt time.Time) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", kind, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (venue, kind, payload, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(venue, kind) DO UPDATE SET
			payload    = excluded.payload,
			fetched_at = excluded.fetched_at
	`, venue, kind, string(payload), fetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store %s snapshot: %w", kind, err)
	}
	return nil
}

// Get loads the latest snapshot of a kind into out and returns when it was
// fetched. Returns ErrMiss when nothing has been cached yet.
func (s *Store) Get(venue, kind string, out any) (time.Time, error) {
	var payload, fetchedAt string
	err := s.db.QueryRow(`
		SELECT payload, fetched_at FROM snapshots WHERE venue = ? AND kind = ?
	`, venue, kind).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load %s snapshot: %w", kind, err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal %s snapshot: %w", kind, err)
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse snapshot timestamp: %w", err)
	}
	return at, nil
}

// Purge drops every snapshot for a venue.
func (s *Store) Purge(venue string) error {
	if _, err := s.db.Exec(`DELETE FROM snapshots WHERE venue = ?`, venue); err != nil {
		return fmt.Errorf("failed to purge snapshots: %w", err)
	}
	return nil
}
