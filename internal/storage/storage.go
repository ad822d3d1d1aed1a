// Package storage persists the active trip id on the local device. It is a
// single-slot key-value store backed by a SQLite file so the session survives
// restarts; only the session coordinator writes through it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS trip_session (
    slot       INTEGER PRIMARY KEY CHECK (slot = 1),
    trip_id    TEXT NOT NULL,
    saved_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`

// TripStore is the persisted trip-id slot. One row at most; every Save
// overwrites it.
type TripStore struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path and initializes the
// schema.
func Open(path string) (*TripStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.Open: init schema: %w", err)
	}
	return &TripStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *TripStore) Close() error {
	return s.db.Close()
}

// Save stores tripID as the active trip, replacing any previous value.
func (s *TripStore) Save(tripID string) error {
	_, err := s.db.Exec(`
		INSERT INTO trip_session (slot, trip_id) VALUES (1, ?)
		ON CONFLICT (slot) DO UPDATE SET
			trip_id  = excluded.trip_id,
			saved_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`,
		tripID)
	if err != nil {
		return fmt.Errorf("storage.TripStore.Save: %w", err)
	}
	return nil
}

// Get returns the persisted trip id, or "" with no error when none is saved.
func (s *TripStore) Get() (string, error) {
	var tripID string
	err := s.db.QueryRow(`SELECT trip_id FROM trip_session WHERE slot = 1`).Scan(&tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage.TripStore.Get: %w", err)
	}
	return tripID, nil
}

// Remove clears the slot. Removing an empty slot succeeds.
func (s *TripStore) Remove() error {
	if _, err := s.db.Exec(`DELETE FROM trip_session WHERE slot = 1`); err != nil {
		return fmt.Errorf("storage.TripStore.Remove: %w", err)
	}
	return nil
}
