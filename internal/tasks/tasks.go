// Package tasks publishes background work onto NATS. Delivery is
// best-effort: a failed publish is reported to the caller but must not fail
// the request that triggered it.
package tasks

import (
	"encoding/json"
	"fmt"
)

// SubjectConfirmationEmail carries confirmation-email tasks emitted on
// conference creation.
const SubjectConfirmationEmail = "confhub.tasks.confirmation-email"

// ConfirmationEmail asks the mailer to confirm a conference creation.
type ConfirmationEmail struct {
	Email          string `json:"email"`
	ConferenceName string `json:"conferenceName"`
	ConferenceInfo string `json:"conferenceInfo"`
}

// conn captures the subset of the NATS connection we rely on (for easier
// testing).
type conn interface {
	Publish(subj string, data []byte) error
}

// Publisher enqueues tasks on NATS.
type Publisher struct {
	conn conn
}

// NewPublisher creates a task publisher on an established NATS connection.
func NewPublisher(c conn) *Publisher {
	return &Publisher{conn: c}
}

// PublishConfirmationEmail enqueues a confirmation-email task.
func (p *Publisher) PublishConfirmationEmail(msg *ConfirmationEmail) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode confirmation email task: %w", err)
	}
	if err := p.conn.Publish(SubjectConfirmationEmail, data); err != nil {
		return fmt.Errorf("failed to publish confirmation email task: %w", err)
	}
	return nil
}
