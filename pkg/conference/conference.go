package conference

import "github.com/confcloud/confhub/pkg/query"

// Conference is the wire representation of a conference record. Date fields
// are ISO-8601 date strings (yyyy-mm-dd).
type Conference struct {
	Key                  string   `json:"key,omitempty"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	OrganizerUserID      string   `json:"organizerUserId,omitempty"`
	OrganizerDisplayName string   `json:"organizerDisplayName,omitempty"`
	Topics               []string `json:"topics,omitempty"`
	City                 string   `json:"city,omitempty"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
	Month                int      `json:"month,omitempty"`
	MaxAttendees         int      `json:"maxAttendees,omitempty"`
	SeatsAvailable       int      `json:"seatsAvailable,omitempty"`
}

// CreateParams is the request body for creating a conference.
type CreateParams struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	City         string   `json:"city,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	MaxAttendees int      `json:"maxAttendees,omitempty"`
}

// QueryParams is the request body for the filtered conference query.
type QueryParams struct {
	Filters []query.Filter `json:"filters,omitempty"`
}

// ListResult is the response for conference listing operations.
type ListResult struct {
	Items []Conference `json:"items"`
	Count int          `json:"count"`
}

// RegisterResult reports the outcome of a registration.
type RegisterResult struct {
	Registered bool `json:"registered"`
}

// UnregisterResult reports the outcome of an unregistration.
type UnregisterResult struct {
	Unregistered bool `json:"unregistered"`
}

// ConferenceError represents a standard error response for conference operations
type ConferenceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
