// Package service implements conference creation and queries.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/confcloud/confhub/internal/auth"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/internal/tasks"
	model "github.com/confcloud/confhub/pkg/conference"
	"github.com/confcloud/confhub/pkg/logger"
	"github.com/confcloud/confhub/pkg/query"
	"github.com/confcloud/confhub/pkg/session"
)

var (
	// ErrConferenceNotFound is returned when a conference with the given key
	// does not exist
	ErrConferenceNotFound = errors.New("conference not found")

	// ErrNameRequired is returned when the create request has no name
	ErrNameRequired = errors.New("conference 'name' field required")

	// ErrInvalidDate is returned when a date field is not a yyyy-mm-dd string
	ErrInvalidDate = errors.New("invalid date, expected yyyy-mm-dd")
)

// Defaults applied to missing create fields.
var (
	defaultCity   = "Default City"
	defaultTopics = []string{"Default", "Topic"}
)

// Service manages conferences.
type Service struct {
	store    *store.Store
	profiles *profilesvc.Service
	tasks    *tasks.Publisher
	log      *logger.Logger
}

// New creates a conference service. The task publisher may be nil, in which
// case no confirmation emails are enqueued.
func New(s *store.Store, profiles *profilesvc.Service, publisher *tasks.Publisher, log *logger.Logger) *Service {
	return &Service{store: s, profiles: profiles, tasks: publisher, log: log}
}

// Create stores a new conference organized by the caller and enqueues the
// confirmation email task.
func (s *Service) Create(ctx context.Context, identity auth.Identity, params *model.CreateParams) (*model.Conference, error) {
	if params.Name == "" {
		return nil, ErrNameRequired
	}

	organizer, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	c := &store.Conference{
		ID:           uuid.NewString(),
		OrganizerID:  organizer.ID,
		Name:         params.Name,
		Description:  params.Description,
		City:         params.City,
		Topics:       params.Topics,
		MaxAttendees: params.MaxAttendees,
	}

	if c.City == "" {
		c.City = defaultCity
	}
	if len(c.Topics) == 0 {
		c.Topics = defaultTopics
	}

	// Month is derived from the start date; 0 when no start date is given.
	if params.StartDate != "" {
		start, err := parseDate(params.StartDate)
		if err != nil {
			return nil, err
		}
		c.StartDate = start.Format(session.DateLayout)
		c.Month = int(start.Month())
	}
	if params.EndDate != "" {
		end, err := parseDate(params.EndDate)
		if err != nil {
			return nil, err
		}
		c.EndDate = end.Format(session.DateLayout)
	}

	// All seats are open on creation.
	if c.MaxAttendees > 0 {
		c.SeatsAvailable = c.MaxAttendees
	}

	if err := s.store.CreateConference(ctx, c); err != nil {
		return nil, err
	}

	s.enqueueConfirmationEmail(organizer, c)

	return toModel(c, organizer.DisplayName), nil
}

// Get returns the conference with the given key, including the organizer's
// display name.
func (s *Service) Get(ctx context.Context, key string) (*model.Conference, error) {
	c, err := s.store.GetConference(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConferenceNotFound
		}
		return nil, err
	}

	displayName := ""
	if organizer, err := s.store.GetProfile(ctx, c.OrganizerID); err == nil {
		displayName = organizer.DisplayName
	}
	return toModel(c, displayName), nil
}

// CreatedBy returns the conferences organized by the caller.
func (s *Service) CreatedBy(ctx context.Context, identity auth.Identity) (*model.ListResult, error) {
	organizer, err := s.profiles.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, err
	}

	conferences, err := s.store.ConferencesByOrganizer(ctx, organizer.ID)
	if err != nil {
		return nil, err
	}
	return toListResult(conferences, organizer.DisplayName), nil
}

// Query runs a filtered conference query. Filter validation errors pass
// through for the handler to surface as client rejections.
func (s *Service) Query(ctx context.Context, params *model.QueryParams) (*model.ListResult, error) {
	plan, err := query.Build(params.Filters)
	if err != nil {
		return nil, err
	}

	conferences, err := s.store.QueryConferences(ctx, plan)
	if err != nil {
		return nil, err
	}
	return toListResult(conferences, ""), nil
}

// enqueueConfirmationEmail publishes the confirmation task. The task queue
// is best-effort; failures are logged and do not fail the creation.
func (s *Service) enqueueConfirmationEmail(organizer *store.Profile, c *store.Conference) {
	if s.tasks == nil {
		return
	}

	err := s.tasks.PublishConfirmationEmail(&tasks.ConfirmationEmail{
		Email:          organizer.MainEmail,
		ConferenceName: c.Name,
		ConferenceInfo: conferenceInfo(c),
	})
	if err != nil {
		s.log.Warn("Failed to enqueue confirmation email for conference %s: %v", c.ID, err)
	}
}

func conferenceInfo(c *store.Conference) string {
	info := fmt.Sprintf("Name: %s\r\nCity: %s\r\nTopics: %s", c.Name, c.City, strings.Join(c.Topics, ", "))
	if c.StartDate != "" {
		info += fmt.Sprintf("\r\nStarts: %s", c.StartDate)
	}
	if c.MaxAttendees > 0 {
		info += fmt.Sprintf("\r\nSeats: %d", c.MaxAttendees)
	}
	return info
}

func parseDate(value string) (time.Time, error) {
	// Accept full timestamps by taking the date prefix.
	if len(value) > len(session.DateLayout) {
		value = value[:len(session.DateLayout)]
	}
	t, err := time.Parse(session.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func toModel(c *store.Conference, organizerDisplayName string) *model.Conference {
	return &model.Conference{
		Key:                  c.ID,
		Name:                 c.Name,
		Description:          c.Description,
		OrganizerUserID:      c.OrganizerID,
		OrganizerDisplayName: organizerDisplayName,
		Topics:               c.Topics,
		City:                 c.City,
		StartDate:            c.StartDate,
		EndDate:              c.EndDate,
		Month:                c.Month,
		MaxAttendees:         c.MaxAttendees,
		SeatsAvailable:       c.SeatsAvailable,
	}
}

func toListResult(conferences []*store.Conference, organizerDisplayName string) *model.ListResult {
	items := make([]model.Conference, 0, len(conferences))
	for _, c := range conferences {
		items = append(items, *toModel(c, organizerDisplayName))
	}
	return &model.ListResult{Items: items, Count: len(items)}
}
