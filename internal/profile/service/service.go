// Package service implements profile management. Profiles are created
// lazily on first touch, mirroring how the caller identity arrives from the
// gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/store"
	model "github.com/confcloud/confhub/pkg/profile"
)

var (
	// ErrInvalidTeeShirtSize is returned when the update carries an unknown
	// tee-shirt size value
	ErrInvalidTeeShirtSize = errors.New("invalid tee shirt size")
)

// Service manages user profiles.
type Service struct {
	store *store.Store
}

// New creates a profile service.
func New(s *store.Store) *Service {
	return &Service{store: s}
}

// GetOrCreate returns the caller's profile, creating a default one when the
// caller has none yet.
func (s *Service) GetOrCreate(ctx context.Context, identity auth.Identity) (*store.Profile, error) {
	p, err := s.store.GetProfile(ctx, identity.Email)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	p = &store.Profile{
		ID:           identity.Email,
		DisplayName:  defaultDisplayName(identity),
		MainEmail:    identity.Email,
		TeeShirtSize: model.TeeShirtSizeNotSpecified,
	}
	if err := s.store.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the caller's profile as a wire model, creating it on first
// touch.
func (s *Service) Get(ctx context.Context, identity auth.Identity) (*model.Profile, error) {
	p, err := s.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}
	return toModel(p), nil
}

// Update applies the user-modifiable fields and returns the updated profile.
func (s *Service) Update(ctx context.Context, identity auth.Identity, params *model.UpdateParams) (*model.Profile, error) {
	p, err := s.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	if params.DisplayName != "" {
		p.DisplayName = params.DisplayName
	}
	if params.TeeShirtSize != "" {
		if !model.ValidTeeShirtSize(params.TeeShirtSize) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTeeShirtSize, params.TeeShirtSize)
		}
		p.TeeShirtSize = params.TeeShirtSize
	}

	if err := s.store.UpdateProfile(ctx, p); err != nil {
		return nil, err
	}
	return toModel(p), nil
}

// defaultDisplayName falls back to the local part of the email address when
// the gateway sends no name.
func defaultDisplayName(identity auth.Identity) string {
	if identity.Name != "" {
		return identity.Name
	}
	if at := strings.Index(identity.Email, "@"); at > 0 {
		return identity.Email[:at]
	}
	return identity.Email
}

func toModel(p *store.Profile) *model.Profile {
	return &model.Profile{
		DisplayName:  p.DisplayName,
		MainEmail:    p.MainEmail,
		TeeShirtSize: p.TeeShirtSize,
	}
}
