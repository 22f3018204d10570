package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confcloud/confhub/internal/auth"
	"github.com/confcloud/confhub/internal/cache"
	profilesvc "github.com/confcloud/confhub/internal/profile/service"
	"github.com/confcloud/confhub/internal/session/service"
	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/pkg/logger"
	model "github.com/confcloud/confhub/pkg/session"
)

var speaker = auth.Identity{Email: "ada@example.com", Name: "Ada Lovelace"}

func newService(t *testing.T) (*service.Service, *store.Store) {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return service.New(s, profilesvc.New(s), cache.NewMemory(), logger.New()), s
}

func newConference(t *testing.T, s *store.Store) *store.Conference {
	t.Helper()
	ctx := context.Background()
	p := &store.Profile{ID: "org@example.com", DisplayName: "Org", MainEmail: "org@example.com", TeeShirtSize: "NOT_SPECIFIED"}
	require.NoError(t, s.CreateProfile(ctx, p))

	c := &store.Conference{
		ID:          uuid.NewString(),
		OrganizerID: p.ID,
		Name:        "GopherCon",
		City:        "Denver",
		StartDate:   "2026-07-08",
		Month:       7,
	}
	require.NoError(t, s.CreateConference(ctx, c))
	return c
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc, s := newService(t)
	c := newConference(t, s)

	sess, err := svc.Create(context.Background(), speaker, c.ID, &model.CreateParams{Name: "Generics in practice"})
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Key)
	assert.Equal(t, c.ID, sess.ConferenceKey)
	assert.Equal(t, "2026-07-08", sess.Date, "undated session falls on the conference start date")
	assert.Equal(t, 60, sess.Duration)
	assert.Equal(t, "Amazing session! Don't miss it.", sess.Highlights)
	assert.Equal(t, "Ada Lovelace", sess.Speaker, "speaker defaults to the caller's display name")
	assert.NotEmpty(t, sess.StartTime)
}

func TestCreateValidation(t *testing.T) {
	svc, s := newService(t)
	c := newConference(t, s)
	ctx := context.Background()

	_, err := svc.Create(ctx, speaker, c.ID, &model.CreateParams{})
	assert.ErrorIs(t, err, service.ErrNameRequired)

	_, err = svc.Create(ctx, speaker, "no-such-key", &model.CreateParams{Name: "Talk"})
	assert.ErrorIs(t, err, service.ErrConferenceNotFound)

	_, err = svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Talk", Date: "July 8th"})
	assert.ErrorIs(t, err, service.ErrInvalidDate)

	_, err = svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Talk", StartTime: "9am"})
	assert.ErrorIs(t, err, service.ErrInvalidTime)
}

func TestByConferenceAndType(t *testing.T) {
	svc, s := newService(t)
	c := newConference(t, s)
	ctx := context.Background()

	_, err := svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Keynote", TypeOfSession: "keynote"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Workshop", TypeOfSession: "workshop"})
	require.NoError(t, err)

	all, err := svc.ByConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)

	keynotes, err := svc.ByType(ctx, c.ID, "keynote")
	require.NoError(t, err)
	require.Equal(t, 1, keynotes.Count)
	assert.Equal(t, "Keynote", keynotes.Items[0].Name)

	_, err = svc.ByConference(ctx, "no-such-key")
	assert.ErrorIs(t, err, service.ErrConferenceNotFound)
}

func TestFeaturedSpeaker(t *testing.T) {
	svc, s := newService(t)
	c := newConference(t, s)
	ctx := context.Background()

	_, err := svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Generics in practice"})
	require.NoError(t, err)

	// A single session does not feature the speaker.
	featured, err := svc.FeaturedSpeaker(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, featured.Speaker)

	_, err = svc.Create(ctx, speaker, c.ID, &model.CreateParams{Name: "Profiling Go services"})
	require.NoError(t, err)

	featured, err = svc.FeaturedSpeaker(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", featured.Speaker)
	assert.ElementsMatch(t, []string{"Generics in practice", "Profiling Go services"}, featured.SessionNames)
}

func TestRangeQueries(t *testing.T) {
	svc, s := newService(t)
	c := newConference(t, s)
	ctx := context.Background()

	for _, params := range []*model.CreateParams{
		{Name: "Short", Duration: 30, Date: "2026-07-08", StartTime: "09:00"},
		{Name: "Long", Duration: 120, Date: "2026-07-09", StartTime: "16:00"},
	} {
		_, err := svc.Create(ctx, speaker, c.ID, params)
		require.NoError(t, err)
	}

	min, max := 20, 60
	byDuration, err := svc.ByDuration(ctx, &model.DurationRange{Min: &min, Max: &max})
	require.NoError(t, err)
	require.Equal(t, 1, byDuration.Count)
	assert.Equal(t, "Short", byDuration.Items[0].Name)

	byDate, err := svc.ByDate(ctx, &model.Range{Min: "2026-07-09"})
	require.NoError(t, err)
	require.Equal(t, 1, byDate.Count)
	assert.Equal(t, "Long", byDate.Items[0].Name)

	byTime, err := svc.ByStartTime(ctx, &model.Range{Max: "12:00"})
	require.NoError(t, err)
	require.Equal(t, 1, byTime.Count)
	assert.Equal(t, "Short", byTime.Items[0].Name)
}

func TestRangeValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	neg := -1
	_, err := svc.ByDuration(ctx, &model.DurationRange{Min: &neg})
	assert.ErrorIs(t, err, service.ErrNegativeBound)

	min, max := 60, 30
	_, err = svc.ByDuration(ctx, &model.DurationRange{Min: &min, Max: &max})
	assert.ErrorIs(t, err, service.ErrInvertedRange)

	_, err = svc.ByDate(ctx, &model.Range{Min: "tomorrow"})
	assert.ErrorIs(t, err, service.ErrInvalidDate)

	_, err = svc.ByStartTime(ctx, &model.Range{Min: "14:00", Max: "09:00"})
	assert.ErrorIs(t, err, service.ErrInvertedRange)
}
