package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/conference/service"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/store"
	model "github.com/confcloud/confhub/pkg/conference"
	"github.com/confcloud/confhub/pkg/logger"
	"github.com/confcloud/confhub/pkg/query"
)

func newService(t *testing.T) *service.Service {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return service.New(s, profilesvc.New(s), nil, logger.New())
}

var organizer = auth.Identity{Email: "org@example.com", Name: "Orga Nizer"}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newService(t)

	c, err := svc.Create(context.Background(), organizer, &model.CreateParams{
		Name:         "GopherCon",
		StartDate:    "2026-07-08",
		MaxAttendees: 100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, c.Key)
	assert.Equal(t, "Default City", c.City)
	assert.Equal(t, []string{"Default", "Topic"}, c.Topics)
	assert.Equal(t, 7, c.Month)
	assert.Equal(t, 100, c.SeatsAvailable)
	assert.Equal(t, "org@example.com", c.OrganizerUserID)
	assert.Equal(t, "Orga Nizer", c.OrganizerDisplayName)
}

func TestCreateRequiresName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), organizer, &model.CreateParams{})
	assert.ErrorIs(t, err, service.ErrNameRequired)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), organizer, &model.CreateParams{
		Name:      "GopherCon",
		StartDate: "July 8th",
	})
	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestCreateAcceptsTimestampDates(t *testing.T) {
	svc := newService(t)

	c, err := svc.Create(context.Background(), organizer, &model.CreateParams{
		Name:      "GopherCon",
		StartDate: "2026-07-08T09:00:00Z",
		EndDate:   "2026-07-10T17:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-07-08", c.StartDate)
	assert.Equal(t, "2026-07-10", c.EndDate)
}

func TestGetUnknownConference(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, service.ErrConferenceNotFound)
}

func TestCreatedByListsOwnConferences(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, organizer, &model.CreateParams{Name: "GopherCon"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, auth.Identity{Email: "other@example.com"}, &model.CreateParams{Name: "RustConf"})
	require.NoError(t, err)

	result, err := svc.CreatedBy(ctx, organizer)
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "GopherCon", result.Items[0].Name)
	assert.Equal(t, "Orga Nizer", result.Items[0].OrganizerDisplayName)
}

func TestQueryFiltersConferences(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, params := range []*model.CreateParams{
		{Name: "GopherCon", City: "Denver", StartDate: "2026-07-08", MaxAttendees: 100},
		{Name: "CityJS", City: "London", StartDate: "2026-07-20", MaxAttendees: 5},
		{Name: "KubeCon", City: "London", StartDate: "2026-11-02", MaxAttendees: 500},
	} {
		_, err := svc.Create(ctx, organizer, params)
		require.NoError(t, err)
	}

	result, err := svc.Query(ctx, &model.QueryParams{Filters: []query.Filter{
		{Field: "CITY", Operator: "EQ", Value: "London"},
		{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
	}})
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "KubeCon", result.Items[0].Name)
}

func TestQueryRejectsBadFilters(t *testing.T) {
	svc := newService(t)

	_, err := svc.Query(context.Background(), &model.QueryParams{Filters: []query.Filter{
		{Field: "MONTH", Operator: "GT", Value: "5"},
		{Field: "MAX_ATTENDEES", Operator: "LT", Value: "10"},
	}})

	var multiErr *query.MultipleInequalityFieldsError
	assert.ErrorAs(t, err, &multiErr)
}
