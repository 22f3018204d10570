package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Profile is a persisted user profile. ID is the user's identity as reported
// by the gateway (their email address).
type Profile struct {
	ID           string
	DisplayName  string
	MainEmail    string
	TeeShirtSize string
}

// GetProfile fetches a profile by ID. Returns ErrNotFound when absent.
func (s *Store) GetProfile(ctx context.Context, id string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, display_name, main_email, tee_shirt_size FROM profiles WHERE id = ?`, id)

	var p Profile
	if err := row.Scan(&p.ID, &p.DisplayName, &p.MainEmail, &p.TeeShirtSize); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// CreateProfile inserts a new profile.
func (s *Store) CreateProfile(ctx context.Context, p *Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, display_name, main_email, tee_shirt_size) VALUES (?, ?, ?, ?)`,
		p.ID, p.DisplayName, p.MainEmail, p.TeeShirtSize)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// UpdateProfile overwrites the mutable profile fields.
func (s *Store) UpdateProfile(ctx context.Context, p *Profile) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET display_name = ?, tee_shirt_size = ? WHERE id = ?`,
		p.DisplayName, p.TeeShirtSize, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
