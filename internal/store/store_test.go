package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/pkg/query"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createProfile(t *testing.T, s *store.Store, id string) *store.Profile {
	t.Helper()
	p := &store.Profile{ID: id, DisplayName: "Tester", MainEmail: id, TeeShirtSize: "NOT_SPECIFIED"}
	require.NoError(t, s.CreateProfile(context.Background(), p))
	return p
}

func createConference(t *testing.T, s *store.Store, c *store.Conference) *store.Conference {
	t.Helper()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	require.NoError(t, s.CreateConference(context.Background(), c))
	return c
}

func TestProfileLifecycle(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.GetProfile(ctx, "ada@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)

	createProfile(t, s, "ada@example.com")

	p, err := s.GetProfile(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Tester", p.DisplayName)
	assert.Equal(t, "NOT_SPECIFIED", p.TeeShirtSize)

	p.DisplayName = "Ada"
	p.TeeShirtSize = "M_W"
	require.NoError(t, s.UpdateProfile(ctx, p))

	p, err = s.GetProfile(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.DisplayName)
	assert.Equal(t, "M_W", p.TeeShirtSize)
}

func TestConferenceCreateAndGet(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")

	c := createConference(t, s, &store.Conference{
		OrganizerID:    "org@example.com",
		Name:           "GopherCon",
		City:           "Denver",
		StartDate:      "2026-07-08",
		Month:          7,
		MaxAttendees:   100,
		SeatsAvailable: 100,
		Topics:         []string{"Go", "Cloud"},
	})

	got, err := s.GetConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "GopherCon", got.Name)
	assert.Equal(t, []string{"Cloud", "Go"}, got.Topics)

	_, err = s.GetConference(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestConferencesByOrganizer(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")
	createProfile(t, s, "other@example.com")

	createConference(t, s, &store.Conference{OrganizerID: "org@example.com", Name: "B Conf"})
	createConference(t, s, &store.Conference{OrganizerID: "org@example.com", Name: "A Conf"})
	createConference(t, s, &store.Conference{OrganizerID: "other@example.com", Name: "C Conf"})

	confs, err := s.ConferencesByOrganizer(ctx, "org@example.com")
	require.NoError(t, err)
	require.Len(t, confs, 2)
	assert.Equal(t, "A Conf", confs[0].Name)
	assert.Equal(t, "B Conf", confs[1].Name)
}

func TestQueryConferencesPlan(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")

	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "June Small",
		Month: 6, MaxAttendees: 5, SeatsAvailable: 5,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "June Big",
		Month: 6, MaxAttendees: 500, SeatsAvailable: 500,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "July Big",
		Month: 7, MaxAttendees: 500, SeatsAvailable: 500,
	})

	// month = 6 AND maxAttendees > 10, sorted by maxAttendees then name
	plan, err := query.Build([]query.Filter{
		{Field: "MONTH", Operator: "EQ", Value: "6"},
		{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
	})
	require.NoError(t, err)

	confs, err := s.QueryConferences(ctx, plan)
	require.NoError(t, err)
	require.Len(t, confs, 1)
	assert.Equal(t, "June Big", confs[0].Name)
}

func TestQueryConferencesTopicPredicate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")

	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Go Conf", Topics: []string{"Go", "Cloud"},
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Rust Conf", Topics: []string{"Rust"},
	})

	plan, err := query.Build([]query.Filter{
		{Field: "TOPIC", Operator: "EQ", Value: "Go"},
	})
	require.NoError(t, err)

	confs, err := s.QueryConferences(ctx, plan)
	require.NoError(t, err)
	require.Len(t, confs, 1)
	assert.Equal(t, "Go Conf", confs[0].Name)
}

func TestQueryConferencesSortByInequalityField(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")

	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Big", MaxAttendees: 300,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Small", MaxAttendees: 20,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Medium", MaxAttendees: 100,
	})

	plan, err := query.Build([]query.Filter{
		{Field: "MAX_ATTENDEES", Operator: "GT", Value: "10"},
	})
	require.NoError(t, err)

	confs, err := s.QueryConferences(ctx, plan)
	require.NoError(t, err)
	require.Len(t, confs, 3)
	assert.Equal(t, "Small", confs[0].Name)
	assert.Equal(t, "Medium", confs[1].Name)
	assert.Equal(t, "Big", confs[2].Name)
}

func TestAlmostSoldOut(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")

	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Nearly Full", SeatsAvailable: 3,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Sold Out", SeatsAvailable: 0,
	})
	createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Plenty", SeatsAvailable: 50,
	})

	names, err := s.AlmostSoldOut(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nearly Full"}, names)
}

func TestSessionQueries(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "org@example.com")
	c := createConference(t, s, &store.Conference{OrganizerID: "org@example.com", Name: "GopherCon"})

	mk := func(name, speaker, typ, date, startTime string, duration int) *store.Session {
		sess := &store.Session{
			ID: uuid.NewString(), ConferenceID: c.ID, Name: name, Speaker: speaker,
			TypeOfSession: typ, Date: date, StartTime: startTime, Duration: duration,
		}
		require.NoError(t, s.CreateSession(ctx, sess))
		return sess
	}

	mk("Generics Deep Dive", "Ada", "workshop", "2026-07-08", "09:00", 120)
	mk("Intro Keynote", "Ada", "keynote", "2026-07-08", "10:30", 45)
	mk("Closing Panel", "Grace", "panel", "2026-07-09", "17:00", 60)

	all, err := s.SessionsByConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	workshops, err := s.SessionsByConferenceAndType(ctx, c.ID, "workshop")
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Equal(t, "Generics Deep Dive", workshops[0].Name)

	byAda, err := s.SessionsBySpeaker(ctx, "Ada")
	require.NoError(t, err)
	assert.Len(t, byAda, 2)

	names, err := s.SessionNamesBySpeakerInConference(ctx, c.ID, "Ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"Generics Deep Dive", "Intro Keynote"}, names)

	short, err := s.SessionsByRange(ctx, store.RangeDuration, nil, 60)
	require.NoError(t, err)
	require.Len(t, short, 2)
	assert.Equal(t, "Intro Keynote", short[0].Name) // ordered by duration

	day2, err := s.SessionsByRange(ctx, store.RangeDate, "2026-07-09", nil)
	require.NoError(t, err)
	require.Len(t, day2, 1)
	assert.Equal(t, "Closing Panel", day2[0].Name)

	morning, err := s.SessionsByRange(ctx, store.RangeStartTime, "08:00", "12:00")
	require.NoError(t, err)
	assert.Len(t, morning, 2)
}

func TestWishlist(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "ada@example.com")
	createProfile(t, s, "org@example.com")
	c := createConference(t, s, &store.Conference{OrganizerID: "org@example.com", Name: "GopherCon"})

	sess := &store.Session{ID: uuid.NewString(), ConferenceID: c.ID, Name: "Generics Deep Dive"}
	require.NoError(t, s.CreateSession(ctx, sess))

	require.NoError(t, s.AddToWishlist(ctx, "ada@example.com", sess.ID))
	assert.ErrorIs(t, s.AddToWishlist(ctx, "ada@example.com", sess.ID), store.ErrAlreadyInWishlist)

	sessions, err := s.WishlistSessions(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Generics Deep Dive", sessions[0].Name)

	removed, err := s.RemoveFromWishlist(ctx, "ada@example.com", sess.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.RemoveFromWishlist(ctx, "ada@example.com", sess.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRegistrationSeatAccounting(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	createProfile(t, s, "ada@example.com")
	createProfile(t, s, "grace@example.com")
	createProfile(t, s, "org@example.com")

	c := createConference(t, s, &store.Conference{
		OrganizerID: "org@example.com", Name: "Tiny Conf",
		MaxAttendees: 1, SeatsAvailable: 1,
	})

	require.NoError(t, s.Register(ctx, "ada@example.com", c.ID))

	got, err := s.GetConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SeatsAvailable)

	// Duplicate registration is a conflict, seats unchanged
	assert.ErrorIs(t, s.Register(ctx, "ada@example.com", c.ID), store.ErrAlreadyRegistered)

	// Sold out for everyone else
	assert.ErrorIs(t, s.Register(ctx, "grace@example.com", c.ID), store.ErrNoSeatsAvailable)

	got, err = s.GetConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SeatsAvailable)

	attending, err := s.ConferencesAttending(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, attending, 1)
	assert.Equal(t, "Tiny Conf", attending[0].Name)

	// Unregister restores the seat
	ok, err := s.Unregister(ctx, "ada@example.com", c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = s.GetConference(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SeatsAvailable)

	ok, err = s.Unregister(ctx, "ada@example.com", c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.Register(ctx, "ada@example.com", "missing"), store.ErrNotFound)
	_, err = s.Unregister(ctx, "ada@example.com", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
