package mailer_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confcloud/confhub/internal/mailer"
	"github.com/confcloud/confhub/internal/tasks"
	"github.com/confcloud/confhub/pkg/logger"
)

type fakeSender struct {
	to      string
	subject string
	body    string
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

func TestHandleDeliversConfirmation(t *testing.T) {
	sender := &fakeSender{}
	m := mailer.New(sender, logger.New())

	payload, err := json.Marshal(&tasks.ConfirmationEmail{
		Email:          "org@example.com",
		ConferenceName: "GopherCon",
		ConferenceInfo: "Name: GopherCon\r\nCity: Denver",
	})
	require.NoError(t, err)

	require.NoError(t, m.Handle(payload))
	assert.Equal(t, "org@example.com", sender.to)
	assert.Equal(t, "You created a new Conference!", sender.subject)
	assert.Contains(t, sender.body, "Hi, you have created a following conference:")
	assert.Contains(t, sender.body, "City: Denver")
}

func TestHandleRejectsBadPayload(t *testing.T) {
	m := mailer.New(&fakeSender{}, logger.New())
	assert.Error(t, m.Handle([]byte("not json")))
}
