// Package service implements the per-user session wishlist.
package service

import (
	"context"
	"errors"

	"github.com/confcloud/confhub/internal/auth"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	model "github.com/confcloud/confhub/pkg/session"
)

var (
	// ErrSessionNotFound is returned when the session does not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrAlreadyInWishlist is returned when the session is already on the
	// caller's wishlist
	ErrAlreadyInWishlist = errors.New("session already in wishlist")
)

// Service manages session wishlists.
type Service struct {
	store    *store.Store
	profiles *profilesvc.Service
}

// New creates a wishlist service.
func New(s *store.Store, profiles *profilesvc.Service) *Service {
	return &Service{store: s, profiles: profiles}
}

// Add puts a session on the caller's wishlist.
func (s *Service) Add(ctx context.Context, identity auth.Identity, sessionKey string) error {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return err
	}

	if _, err := s.store.GetSession(ctx, sessionKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}

	if err := s.store.AddToWishlist(ctx, profile.ID, sessionKey); err != nil {
		if errors.Is(err, store.ErrAlreadyInWishlist) {
			return ErrAlreadyInWishlist
		}
		return err
	}
	return nil
}

// List returns the sessions on the caller's wishlist.
func (s *Service) List(ctx context.Context, identity auth.Identity) (*model.ListResult, error) {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.WishlistSessions(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	items := make([]model.Session, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, model.Session{
			Key:           sess.ID,
			ConferenceKey: sess.ConferenceID,
			Name:          sess.Name,
			Highlights:    sess.Highlights,
			Speaker:       sess.Speaker,
			Duration:      sess.Duration,
			TypeOfSession: sess.TypeOfSession,
			Date:          sess.Date,
			StartTime:     sess.StartTime,
		})
	}
	return &model.ListResult{Items: items, Count: len(items)}, nil
}

// Remove takes a session off the caller's wishlist, reporting whether it was
// there. Unknown sessions return ErrSessionNotFound.
func (s *Service) Remove(ctx context.Context, identity auth.Identity, sessionKey string) (bool, error) {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return false, err
	}

	if _, err := s.store.GetSession(ctx, sessionKey); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, ErrSessionNotFound
		}
		return false, err
	}

	return s.store.RemoveFromWishlist(ctx, profile.ID, sessionKey)
}
