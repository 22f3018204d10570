// Package mailer consumes confirmation-email tasks from NATS and delivers
// them. Delivery goes over SMTP when a server is configured, otherwise the
// mail is only logged.
package mailer

import (
	"encoding/json"
	"fmt"
	"net/smtp"

	"github.com/nats-io/nats.go"

	"github.com/confcloud/confhub/internal/tasks"
	"github.com/confcloud/confhub/pkg/logger"
)

// Sender delivers a single mail message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers mail through an SMTP server.
type SMTPSender struct {
	Addr string
	From string
}

// Send delivers the message via SMTP without authentication; the server is
// expected to be a local relay.
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.From, to, subject, body)
	if err := smtp.SendMail(s.Addr, nil, s.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp delivery failed: %w", err)
	}
	return nil
}

// LogSender writes mail to the log instead of delivering it. Used when no
// SMTP server is configured.
type LogSender struct {
	Log *logger.Logger
}

func (s *LogSender) Send(to, subject, body string) error {
	s.Log.Info("Mail to %s: %s\n%s", to, subject, body)
	return nil
}

// Mailer subscribes to the confirmation-email subject and delivers the
// resulting mail.
type Mailer struct {
	sender Sender
	log    *logger.Logger
}

// New creates a mailer with the given sender.
func New(sender Sender, log *logger.Logger) *Mailer {
	return &Mailer{sender: sender, log: log}
}

// Start subscribes the mailer on the NATS connection.
func (m *Mailer) Start(nc *nats.Conn) (*nats.Subscription, error) {
	return nc.Subscribe(tasks.SubjectConfirmationEmail, func(msg *nats.Msg) {
		if err := m.Handle(msg.Data); err != nil {
			m.log.Error("Failed to handle confirmation email task: %v", err)
		}
	})
}

// Handle processes one confirmation-email task payload.
func (m *Mailer) Handle(data []byte) error {
	var task tasks.ConfirmationEmail
	if err := json.Unmarshal(data, &task); err != nil {
		return fmt.Errorf("failed to decode confirmation email task: %w", err)
	}

	body := fmt.Sprintf("Hi, you have created a following conference:\r\n\r\n%s", task.ConferenceInfo)
	return m.sender.Send(task.Email, "You created a new Conference!", body)
}
