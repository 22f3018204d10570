package store

import (
	"context"
	"fmt"
)

// AddToWishlist records a session on a profile's wishlist. Returns
// ErrAlreadyInWishlist on duplicates.
func (s *Store) AddToWishlist(ctx context.Context, profileID, sessionID string) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO wishlists (profile_id, session_id) VALUES (?, ?)`,
		profileID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAlreadyInWishlist
	}
	return nil
}

// RemoveFromWishlist deletes a wishlist entry, reporting whether one existed.
func (s *Store) RemoveFromWishlist(ctx context.Context, profileID, sessionID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM wishlists WHERE profile_id = ? AND session_id = ?`,
		profileID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// WishlistSessions returns the sessions on a profile's wishlist, ordered by
// session name.
func (s *Store) WishlistSessions(ctx context.Context, profileID string) ([]*Session, error) {
	return s.querySessions(ctx,
		`SELECT s.id, s.conference_id, s.name, s.highlights, s.speaker, s.duration,
			s.type_of_session, s.date, s.start_time
		FROM sessions s
		JOIN wishlists w ON w.session_id = s.id
		WHERE w.profile_id = ?
		ORDER BY s.name`, profileID)
}
