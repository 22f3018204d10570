// Package store persists conference records in SQLite and translates query
// plans into SQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is returned when a record with the given key does not exist
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyRegistered is returned when the profile is already registered
	// for the conference
	ErrAlreadyRegistered = errors.New("already registered for this conference")

	// ErrNoSeatsAvailable is returned when the conference has no seats left
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrAlreadyInWishlist is returned when the session is already on the
	// profile's wishlist
	ErrAlreadyInWishlist = errors.New("session already in wishlist")
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id             TEXT PRIMARY KEY,
	display_name   TEXT NOT NULL DEFAULT '',
	main_email     TEXT NOT NULL DEFAULT '',
	tee_shirt_size TEXT NOT NULL DEFAULT 'NOT_SPECIFIED'
);

CREATE TABLE IF NOT EXISTS conferences (
	id              TEXT PRIMARY KEY,
	organizer_id    TEXT NOT NULL REFERENCES profiles(id),
	name            TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	city            TEXT NOT NULL DEFAULT '',
	start_date      TEXT NOT NULL DEFAULT '',
	end_date        TEXT NOT NULL DEFAULT '',
	month           INTEGER NOT NULL DEFAULT 0,
	max_attendees   INTEGER NOT NULL DEFAULT 0,
	seats_available INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS conference_topics (
	conference_id TEXT NOT NULL REFERENCES conferences(id) ON DELETE CASCADE,
	topic         TEXT NOT NULL,
	PRIMARY KEY (conference_id, topic)
);

CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	conference_id   TEXT NOT NULL REFERENCES conferences(id) ON DELETE CASCADE,
	name            TEXT NOT NULL,
	highlights      TEXT NOT NULL DEFAULT '',
	speaker         TEXT NOT NULL DEFAULT '',
	duration        INTEGER NOT NULL DEFAULT 0,
	type_of_session TEXT NOT NULL DEFAULT '',
	date            TEXT NOT NULL DEFAULT '',
	start_time      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS wishlists (
	profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	PRIMARY KEY (profile_id, session_id)
);

CREATE TABLE IF NOT EXISTS registrations (
	profile_id    TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
	conference_id TEXT NOT NULL REFERENCES conferences(id) ON DELETE CASCADE,
	PRIMARY KEY (profile_id, conference_id)
);
`

// Store wraps the SQLite database holding all conference records.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and applies
// the schema. Use ":memory:" for an in-process throwaway store.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// SQLite supports a single writer; one connection also keeps in-memory
	// databases coherent across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
