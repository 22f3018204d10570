// Package service implements session management within conferences,
// including the featured-speaker cache entry.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/cache"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/pkg/logger"
	model "github.com/confcloud/confhub/pkg/session"
)

var (
	// ErrSessionNotFound is returned when a session with the given key does
	// not exist
	ErrSessionNotFound = errors.New("session not found")

	// ErrConferenceNotFound is returned when the parent conference does not
	// exist
	ErrConferenceNotFound = errors.New("conference not found")

	// ErrNameRequired is returned when the create request has no name
	ErrNameRequired = errors.New("session 'name' field required")

	// ErrInvalidDate is returned when a date field is not a yyyy-mm-dd string
	ErrInvalidDate = errors.New("invalid date, expected yyyy-mm-dd")

	// ErrInvalidTime is returned when a time field is not an HH:MM string
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")

	// ErrNegativeBound is returned when a range bound is negative
	ErrNegativeBound = errors.New("range bounds must be positive numbers")

	// ErrInvertedRange is returned when min is not below max
	ErrInvertedRange = errors.New(`"min" must be lesser than "max"`)
)

const defaultHighlights = "Amazing session! Don't miss it."

// featuredSpeakerKey is the cache key for a conference's featured speaker.
func featuredSpeakerKey(conferenceID string) string {
	return "confhub:featured-speaker:" + conferenceID
}

// Service manages conference sessions.
type Service struct {
	store    *store.Store
	profiles *profilesvc.Service
	cache    cache.Cache
	log      *logger.Logger
}

// New creates a session service.
func New(s *store.Store, profiles *profilesvc.Service, c cache.Cache, log *logger.Logger) *Service {
	return &Service{store: s, profiles: profiles, cache: c, log: log}
}

// Create stores a new session under a conference, filling defaults from the
// conference and the caller's profile, and refreshes the featured-speaker
// cache entry for the session's speaker.
func (s *Service) Create(ctx context.Context, identity auth.Identity, conferenceKey string, params *model.CreateParams) (*model.Session, error) {
	if params.Name == "" {
		return nil, ErrNameRequired
	}

	conference, err := s.store.GetConference(ctx, conferenceKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConferenceNotFound
		}
		return nil, err
	}

	sess := &store.Session{
		ID:            uuid.NewString(),
		ConferenceID:  conference.ID,
		Name:          params.Name,
		Highlights:    params.Highlights,
		Speaker:       params.Speaker,
		Duration:      params.Duration,
		TypeOfSession: params.TypeOfSession,
		Date:          params.Date,
		StartTime:     params.StartTime,
	}

	// An undated session falls on the conference start date.
	if sess.Date == "" {
		sess.Date = conference.StartDate
	} else {
		if _, err := time.Parse(model.DateLayout, sess.Date); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, sess.Date)
		}
	}

	if sess.StartTime == "" {
		sess.StartTime = time.Now().Format(model.TimeLayout)
	} else {
		if _, err := time.Parse(model.TimeLayout, sess.StartTime); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, sess.StartTime)
		}
	}

	if sess.Duration <= 0 {
		sess.Duration = 60
	}

	if sess.Speaker == "" {
		profile, err := s.profiles.GetOrCreate(ctx, identity)
		if err != nil {
			return nil, err
		}
		sess.Speaker = profile.DisplayName
	}

	if sess.Highlights == "" {
		sess.Highlights = defaultHighlights
	}

	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	s.refreshFeaturedSpeaker(ctx, conference.ID, sess.Speaker)

	return toModel(sess), nil
}

// ByConference returns all sessions of a conference.
func (s *Service) ByConference(ctx context.Context, conferenceKey string) (*model.ListResult, error) {
	if err := s.checkConference(ctx, conferenceKey); err != nil {
		return nil, err
	}
	sessions, err := s.store.SessionsByConference(ctx, conferenceKey)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// ByType returns the sessions of a conference with the given type.
func (s *Service) ByType(ctx context.Context, conferenceKey, typeOfSession string) (*model.ListResult, error) {
	if err := s.checkConference(ctx, conferenceKey); err != nil {
		return nil, err
	}
	sessions, err := s.store.SessionsByConferenceAndType(ctx, conferenceKey, typeOfSession)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// BySpeaker returns the speaker's sessions across all conferences.
func (s *Service) BySpeaker(ctx context.Context, speaker string) (*model.ListResult, error) {
	sessions, err := s.store.SessionsBySpeaker(ctx, speaker)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// ByDuration returns sessions within the duration bounds, ordered by
// duration.
func (s *Service) ByDuration(ctx context.Context, r *model.DurationRange) (*model.ListResult, error) {
	var min, max interface{}
	if r.Min != nil {
		if *r.Min < 0 {
			return nil, ErrNegativeBound
		}
		min = *r.Min
	}
	if r.Max != nil {
		if *r.Max < 0 {
			return nil, ErrNegativeBound
		}
		max = *r.Max
	}
	if r.Min != nil && r.Max != nil && *r.Min >= *r.Max {
		return nil, ErrInvertedRange
	}

	sessions, err := s.store.SessionsByRange(ctx, store.RangeDuration, min, max)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// ByDate returns sessions within the date bounds, ordered by date.
func (s *Service) ByDate(ctx context.Context, r *model.Range) (*model.ListResult, error) {
	min, max, err := parseRange(r, model.DateLayout, ErrInvalidDate)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.SessionsByRange(ctx, store.RangeDate, min, max)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// ByStartTime returns sessions within the start-time bounds, ordered by
// start time.
func (s *Service) ByStartTime(ctx context.Context, r *model.Range) (*model.ListResult, error) {
	min, max, err := parseRange(r, model.TimeLayout, ErrInvalidTime)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.SessionsByRange(ctx, store.RangeStartTime, min, max)
	if err != nil {
		return nil, err
	}
	return toListResult(sessions), nil
}

// FeaturedSpeaker returns the cached featured-speaker entry for a
// conference, or an empty entry when none is cached.
func (s *Service) FeaturedSpeaker(ctx context.Context, conferenceKey string) (*model.FeaturedSpeaker, error) {
	raw, err := s.cache.Get(ctx, featuredSpeakerKey(conferenceKey))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return &model.FeaturedSpeaker{}, nil
	}

	var featured model.FeaturedSpeaker
	if err := json.Unmarshal([]byte(raw), &featured); err != nil {
		return nil, fmt.Errorf("failed to decode featured speaker entry: %w", err)
	}
	return &featured, nil
}

// refreshFeaturedSpeaker caches the speaker and their session names once
// they hold more than one session in the conference. Cache failures are
// logged, never surfaced.
func (s *Service) refreshFeaturedSpeaker(ctx context.Context, conferenceID, speaker string) {
	names, err := s.store.SessionNamesBySpeakerInConference(ctx, conferenceID, speaker)
	if err != nil {
		s.log.Warn("Failed to look up speaker sessions for conference %s: %v", conferenceID, err)
		return
	}
	if len(names) < 2 {
		return
	}

	data, err := json.Marshal(&model.FeaturedSpeaker{Speaker: speaker, SessionNames: names})
	if err != nil {
		s.log.Warn("Failed to encode featured speaker entry: %v", err)
		return
	}
	if err := s.cache.Set(ctx, featuredSpeakerKey(conferenceID), string(data)); err != nil {
		s.log.Warn("Failed to cache featured speaker for conference %s: %v", conferenceID, err)
	}
}

func (s *Service) checkConference(ctx context.Context, conferenceKey string) error {
	_, err := s.store.GetConference(ctx, conferenceKey)
	if errors.Is(err, store.ErrNotFound) {
		return ErrConferenceNotFound
	}
	return err
}

func parseRange(r *model.Range, layout string, invalidErr error) (min, max interface{}, err error) {
	if r.Min != "" {
		if _, err := time.Parse(layout, r.Min); err != nil {
			return nil, nil, fmt.Errorf("%w: %q", invalidErr, r.Min)
		}
		min = r.Min
	}
	if r.Max != "" {
		if _, err := time.Parse(layout, r.Max); err != nil {
			return nil, nil, fmt.Errorf("%w: %q", invalidErr, r.Max)
		}
		max = r.Max
	}
	if r.Min != "" && r.Max != "" && r.Min >= r.Max {
		return nil, nil, ErrInvertedRange
	}
	return min, max, nil
}

func toModel(sess *store.Session) *model.Session {
	return &model.Session{
		Key:           sess.ID,
		ConferenceKey: sess.ConferenceID,
		Name:          sess.Name,
		Highlights:    sess.Highlights,
		Speaker:       sess.Speaker,
		Duration:      sess.Duration,
		TypeOfSession: sess.TypeOfSession,
		Date:          sess.Date,
		StartTime:     sess.StartTime,
	}
}

func toListResult(sessions []*store.Session) *model.ListResult {
	items := make([]model.Session, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, *toModel(sess))
	}
	return &model.ListResult{Items: items, Count: len(items)}
}
