package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Register records the profile's attendance and takes one seat, atomically.
// Returns ErrNotFound for unknown conferences, ErrAlreadyRegistered for
// duplicates and ErrNoSeatsAvailable when the conference is full. On any
// error nothing is committed.
func (s *Store) Register(ctx context.Context, profileID, conferenceID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = ?`, conferenceID).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check conference: %w", err)
	}

	var registered int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE profile_id = ? AND conference_id = ?`,
		profileID, conferenceID).Scan(&registered)
	if err != nil {
		return fmt.Errorf("failed to check registration: %w", err)
	}
	if registered > 0 {
		return ErrAlreadyRegistered
	}

	if seats <= 0 {
		return ErrNoSeatsAvailable
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO registrations (profile_id, conference_id) VALUES (?, ?)`,
		profileID, conferenceID); err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1 WHERE id = ?`,
		conferenceID); err != nil {
		return fmt.Errorf("failed to update seats: %w", err)
	}

	return tx.Commit()
}

// Unregister removes the profile's attendance and gives the seat back,
// atomically. Reports whether a registration existed. Unknown conferences
// return ErrNotFound.
func (s *Store) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conferences WHERE id = ?`, conferenceID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check conference: %w", err)
	}
	if exists == 0 {
		return false, ErrNotFound
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE profile_id = ? AND conference_id = ?`,
		profileID, conferenceID)
	if err != nil {
		return false, fmt.Errorf("failed to delete registration: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Nothing to undo; commit keeps the transaction cheap either way.
		return false, tx.Commit()
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1 WHERE id = ?`,
		conferenceID); err != nil {
		return false, fmt.Errorf("failed to update seats: %w", err)
	}

	return true, tx.Commit()
}

// ConferencesAttending returns the conferences the profile is registered
// for, ordered by name.
func (s *Store) ConferencesAttending(ctx context.Context, profileID string) ([]*Conference, error) {
	return s.queryConferences(ctx,
		`SELECT c.id, c.organizer_id, c.name, c.description, c.city, c.start_date, c.end_date,
			c.month, c.max_attendees, c.seats_available
		FROM conferences c
		JOIN registrations r ON r.conference_id = c.id
		WHERE r.profile_id = ?
		ORDER BY c.name`, profileID)
}
