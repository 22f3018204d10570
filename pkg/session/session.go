package session

// Date and time layouts used on the wire and in the store.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Session is the wire representation of a conference session. Date is a
// yyyy-mm-dd string, StartTime an HH:MM string, Duration is in minutes.
type Session struct {
	Key           string `json:"key,omitempty"`
	ConferenceKey string `json:"conferenceKey,omitempty"`
	Name          string `json:"name"`
	Highlights    string `json:"highlights,omitempty"`
	Speaker       string `json:"speaker,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	TypeOfSession string `json:"typeOfSession,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
}

// CreateParams is the request body for creating a session.
type CreateParams struct {
	Name          string `json:"name"`
	Highlights    string `json:"highlights,omitempty"`
	Speaker       string `json:"speaker,omitempty"`
	Duration      int    `json:"duration,omitempty"`
	TypeOfSession string `json:"typeOfSession,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
}

// ListResult is the response for session listing operations.
type ListResult struct {
	Items []Session `json:"items"`
	Count int       `json:"count"`
}

// TypeParams selects sessions by type within a conference.
type TypeParams struct {
	Type string `json:"type"`
}

// SpeakerParams selects sessions by speaker across conferences.
type SpeakerParams struct {
	Speaker string `json:"speaker"`
}

// DurationRange bounds session duration in minutes. Nil means unbounded.
type DurationRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Range bounds a date (yyyy-mm-dd) or start time (HH:MM) query. Empty
// strings mean unbounded.
type Range struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// FeaturedSpeaker is the cached entry for a speaker with multiple sessions
// in one conference.
type FeaturedSpeaker struct {
	Speaker      string   `json:"speaker"`
	SessionNames []string `json:"sessionNames"`
}

// AddResult reports the outcome of adding a session to a wishlist.
type AddResult struct {
	Added bool `json:"added"`
}

// RemoveResult reports the outcome of removing a session from a wishlist.
type RemoveResult struct {
	Removed bool `json:"removed"`
}

// SessionError represents a standard error response for session operations
type SessionError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
