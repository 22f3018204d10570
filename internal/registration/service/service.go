// Package service implements conference registration. Seat accounting and
// the registration record are committed in one store transaction.
package service

import (
	"context"
	"errors"

	"github.com/confcloud/confhub/internal/auth"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	model "github.com/confcloud/confhub/pkg/conference"
)

var (
	// ErrConferenceNotFound is returned when the conference does not exist
	ErrConferenceNotFound = errors.New("conference not found")

	// ErrAlreadyRegistered is returned when the caller is already registered
	ErrAlreadyRegistered = errors.New("you have already registered for this conference")

	// ErrNoSeatsAvailable is returned when the conference is sold out
	ErrNoSeatsAvailable = errors.New("there are no seats available")
)

// Service manages conference registrations.
type Service struct {
	store    *store.Store
	profiles *profilesvc.Service
}

// New creates a registration service.
func New(s *store.Store, profiles *profilesvc.Service) *Service {
	return &Service{store: s, profiles: profiles}
}

// Register registers the caller for a conference, taking one seat.
func (s *Service) Register(ctx context.Context, identity auth.Identity, conferenceKey string) error {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return err
	}

	err = s.store.Register(ctx, profile.ID, conferenceKey)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrConferenceNotFound
	case errors.Is(err, store.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, store.ErrNoSeatsAvailable):
		return ErrNoSeatsAvailable
	}
	return err
}

// Unregister removes the caller's registration, giving the seat back.
// Reports whether a registration existed.
func (s *Service) Unregister(ctx context.Context, identity auth.Identity, conferenceKey string) (bool, error) {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return false, err
	}

	ok, err := s.store.Unregister(ctx, profile.ID, conferenceKey)
	if errors.Is(err, store.ErrNotFound) {
		return false, ErrConferenceNotFound
	}
	return ok, err
}

// Attending returns the conferences the caller is registered for.
func (s *Service) Attending(ctx context.Context, identity auth.Identity) (*model.ListResult, error) {
	profile, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	conferences, err := s.store.ConferencesAttending(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	items := make([]model.Conference, 0, len(conferences))
	for _, c := range conferences {
		items = append(items, model.Conference{
			Key:             c.ID,
			Name:            c.Name,
			Description:     c.Description,
			OrganizerUserID: c.OrganizerID,
			Topics:          c.Topics,
			City:            c.City,
			StartDate:       c.StartDate,
			EndDate:         c.EndDate,
			Month:           c.Month,
			MaxAttendees:    c.MaxAttendees,
			SeatsAvailable:  c.SeatsAvailable,
		})
	}
	return &model.ListResult{Items: items, Count: len(items)}, nil
}
