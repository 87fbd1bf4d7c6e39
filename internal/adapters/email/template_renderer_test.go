package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurapoll/internal/domain"
)

func TestTemplateRenderer_Invitation(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("invitation", &domain.EventInvitationEmailData{
		Email:      "alice@example.com",
		Name:       "Alice",
		EventTitle: "Team Sync",
		PollURL:    "http://polls.test/availability/ev-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Event Invitation - Please Submit Your Availability", subject)
	assert.Contains(t, html, "Team Sync")
	assert.Contains(t, html, "http://polls.test/availability/ev-1")
	assert.Contains(t, text, "Hi Alice,")
	assert.Contains(t, text, `"Team Sync"`)
	assert.Contains(t, text, "http://polls.test/availability/ev-1")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no-such-template", nil)

	require.Error(t, err)
}
