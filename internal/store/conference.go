package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/confcloud/confhub/pkg/query"
)

// Conference is a persisted conference record. Dates are yyyy-mm-dd strings,
// empty when unset.
type Conference struct {
	ID             string
	OrganizerID    string
	Name           string
	Description    string
	City           string
	StartDate      string
	EndDate        string
	Month          int
	MaxAttendees   int
	SeatsAvailable int
	Topics         []string
}

// Columns addressable by query plans, keyed by the plan's field names.
var conferenceColumns = map[string]string{
	"city":         "c.city",
	"month":        "c.month",
	"maxAttendees": "c.max_attendees",
	"name":         "c.name",
}

const conferenceSelect = `SELECT c.id, c.organizer_id, c.name, c.description, c.city,
	c.start_date, c.end_date, c.month, c.max_attendees, c.seats_available FROM conferences c`

// CreateConference inserts a conference and its topics.
func (s *Store) CreateConference(ctx context.Context, c *Conference) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO conferences (id, organizer_id, name, description, city, start_date, end_date,
			month, max_attendees, seats_available) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OrganizerID, c.Name, c.Description, c.City, c.StartDate, c.EndDate,
		c.Month, c.MaxAttendees, c.SeatsAvailable)
	if err != nil {
		return fmt.Errorf("failed to create conference: %w", err)
	}

	for _, topic := range c.Topics {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO conference_topics (conference_id, topic) VALUES (?, ?)`,
			c.ID, topic); err != nil {
			return fmt.Errorf("failed to store topic: %w", err)
		}
	}

	return tx.Commit()
}

// GetConference fetches a conference by ID. Returns ErrNotFound when absent.
func (s *Store) GetConference(ctx context.Context, id string) (*Conference, error) {
	row := s.db.QueryRowContext(ctx, conferenceSelect+` WHERE c.id = ?`, id)

	c, err := scanConference(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}

	if err := s.loadTopics(ctx, []*Conference{c}); err != nil {
		return nil, err
	}
	return c, nil
}

// ConferencesByOrganizer returns conferences created by the given profile,
// ordered by name.
func (s *Store) ConferencesByOrganizer(ctx context.Context, organizerID string) ([]*Conference, error) {
	return s.queryConferences(ctx,
		conferenceSelect+` WHERE c.organizer_id = ? ORDER BY c.name`, organizerID)
}

// QueryConferences executes a validated query plan.
func (s *Store) QueryConferences(ctx context.Context, plan *query.Plan) ([]*Conference, error) {
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString(conferenceSelect)

	for i, p := range plan.Predicates {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		clause, arg := conferencePredicate(p)
		sb.WriteString(clause)
		args = append(args, arg)
	}

	sb.WriteString(" ORDER BY ")
	for i, field := range plan.Sort {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(conferenceSortExpr(field))
	}

	return s.queryConferences(ctx, sb.String(), args...)
}

// AlmostSoldOut returns the names of conferences with at most the given
// number of seats left but not sold out, ordered by name.
func (s *Store) AlmostSoldOut(ctx context.Context, maxSeats int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM conferences WHERE seats_available > 0 AND seats_available <= ? ORDER BY name`,
		maxSeats)
	if err != nil {
		return nil, fmt.Errorf("failed to query almost sold out conferences: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// conferencePredicate renders one plan predicate as a SQL clause. Operators
// come from the plan's fixed enumeration, never from client input.
func conferencePredicate(p query.Predicate) (string, interface{}) {
	if p.Field == "topics" {
		// Topics are a repeated field; a predicate matches when any topic of
		// the conference satisfies it.
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM conference_topics t WHERE t.conference_id = c.id AND t.topic %s ?)",
			p.Op), p.Value
	}
	return fmt.Sprintf("%s %s ?", conferenceColumns[p.Field], p.Op), p.Value
}

func conferenceSortExpr(field string) string {
	if field == "topics" {
		return "(SELECT MIN(t.topic) FROM conference_topics t WHERE t.conference_id = c.id)"
	}
	return conferenceColumns[field]
}

func (s *Store) queryConferences(ctx context.Context, querySQL string, args ...interface{}) ([]*Conference, error) {
	rows, err := s.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	defer rows.Close()

	var conferences []*Conference
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		conferences = append(conferences, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadTopics(ctx, conferences); err != nil {
		return nil, err
	}
	return conferences, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConference(row rowScanner) (*Conference, error) {
	var c Conference
	err := row.Scan(&c.ID, &c.OrganizerID, &c.Name, &c.Description, &c.City,
		&c.StartDate, &c.EndDate, &c.Month, &c.MaxAttendees, &c.SeatsAvailable)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) loadTopics(ctx context.Context, conferences []*Conference) error {
	if len(conferences) == 0 {
		return nil
	}

	byID := make(map[string]*Conference, len(conferences))
	placeholders := make([]string, 0, len(conferences))
	args := make([]interface{}, 0, len(conferences))
	for _, c := range conferences {
		byID[c.ID] = c
		placeholders = append(placeholders, "?")
		args = append(args, c.ID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT conference_id, topic FROM conference_topics WHERE conference_id IN (`+
			strings.Join(placeholders, ", ")+`) ORDER BY topic`, args...)
	if err != nil {
		return fmt.Errorf("failed to load topics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, topic string
		if err := rows.Scan(&id, &topic); err != nil {
			return err
		}
		if c := byID[id]; c != nil {
			c.Topics = append(c.Topics, topic)
		}
	}
	return rows.Err()
}
