package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Session is a persisted conference session. Date is a yyyy-mm-dd string,
// StartTime an HH:MM string, Duration is in minutes.
type Session struct {
	ID            string
	ConferenceID  string
	Name          string
	Highlights    string
	Speaker       string
	Duration      int
	TypeOfSession string
	Date          string
	StartTime     string
}

const sessionSelect = `SELECT id, conference_id, name, highlights, speaker, duration,
	type_of_session, date, start_time FROM sessions`

// CreateSession inserts a session.
func (s *Store) CreateSession(ctx context.Context, sess *Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, conference_id, name, highlights, speaker, duration,
			type_of_session, date, start_time) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.ConferenceID, sess.Name, sess.Highlights, sess.Speaker,
		sess.Duration, sess.TypeOfSession, sess.Date, sess.StartTime)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession fetches a session by ID. Returns ErrNotFound when absent.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, sessionSelect+` WHERE id = ?`, id)

	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// SessionsByConference returns all sessions of a conference, ordered by name.
func (s *Store) SessionsByConference(ctx context.Context, conferenceID string) ([]*Session, error) {
	return s.querySessions(ctx,
		sessionSelect+` WHERE conference_id = ? ORDER BY name`, conferenceID)
}

// SessionsByConferenceAndType returns sessions of a conference with the
// given type, ordered by name.
func (s *Store) SessionsByConferenceAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*Session, error) {
	return s.querySessions(ctx,
		sessionSelect+` WHERE conference_id = ? AND type_of_session = ? ORDER BY name`,
		conferenceID, typeOfSession)
}

// SessionsBySpeaker returns sessions by the given speaker across all
// conferences, ordered by name.
func (s *Store) SessionsBySpeaker(ctx context.Context, speaker string) ([]*Session, error) {
	return s.querySessions(ctx,
		sessionSelect+` WHERE speaker = ? ORDER BY name`, speaker)
}

// SessionNamesBySpeakerInConference returns the names of the sessions the
// speaker holds within one conference.
func (s *Store) SessionNamesBySpeakerInConference(ctx context.Context, conferenceID, speaker string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM sessions WHERE conference_id = ? AND speaker = ? ORDER BY name`,
		conferenceID, speaker)
	if err != nil {
		return nil, fmt.Errorf("failed to query speaker sessions: %w", err)
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

// rangeColumn constrains range queries to the columns they are defined for.
type rangeColumn string

const (
	// RangeDuration bounds session duration
	RangeDuration rangeColumn = "duration"
	// RangeDate bounds session date
	RangeDate rangeColumn = "date"
	// RangeStartTime bounds session start time
	RangeStartTime rangeColumn = "start_time"
)

// SessionsByRange returns sessions with column values inside [min, max],
// ordered by that column. Nil bounds are open. Date and time strings compare
// correctly as text in their fixed layouts.
func (s *Store) SessionsByRange(ctx context.Context, col rangeColumn, min, max interface{}) ([]*Session, error) {
	querySQL := sessionSelect + ` WHERE 1=1`
	var args []interface{}

	if min != nil {
		querySQL += fmt.Sprintf(` AND %s >= ?`, col)
		args = append(args, min)
	}
	if max != nil {
		querySQL += fmt.Sprintf(` AND %s <= ?`, col)
		args = append(args, max)
	}
	querySQL += fmt.Sprintf(` ORDER BY %s, name`, col)

	return s.querySessions(ctx, querySQL, args...)
}

func (s *Store) querySessions(ctx context.Context, querySQL string, args ...interface{}) ([]*Session, error) {
	rows, err := s.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func scanSession(row rowScanner) (*Session, error) {
	var sess Session
	err := row.Scan(&sess.ID, &sess.ConferenceID, &sess.Name, &sess.Highlights,
		&sess.Speaker, &sess.Duration, &sess.TypeOfSession, &sess.Date, &sess.StartTime)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}
