package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurapoll/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return nil
}

type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject:" + name, "<p>html</p>", "text", nil
}

func TestEmailService_SendEventInvitation(t *testing.T) {
	ctx := context.Background()
	data := &domain.EventInvitationEmailData{
		Email:      "alice@example.com",
		Name:       "Alice",
		EventTitle: "Team Sync",
		PollURL:    "http://polls.test/availability/ev-1",
	}

	t.Run("renders the invitation template and sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{})

		require.NoError(t, svc.SendEventInvitation(ctx, data))

		assert.Equal(t, "alice@example.com", mailer.to)
		assert.Equal(t, "subject:invitation", mailer.subject)
		assert.Equal(t, "<p>html</p>", mailer.html)
	})

	t.Run("render failure", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("missing template")})

		require.Error(t, svc.SendEventInvitation(ctx, data))
	})

	t.Run("send failure", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("smtp down")}, &fakeRenderer{})

		require.Error(t, svc.SendEventInvitation(ctx, data))
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})

		require.Error(t, svc.SendEventInvitation(ctx, nil))
	})
}
