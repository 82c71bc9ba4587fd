package email

import (
	"testing"

	"eventgate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_EventCreated(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.EventCreatedEmailData{
		Email:         "ada@example.com",
		OrganizerName: "Ada",
		EventName:     "Expo <2025>",
	}
	subject, html, text, err := r.Render("event_created", data)
	require.NoError(t, err)

	assert.Equal(t, "Your Event is Live!", subject)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "Expo &lt;2025&gt;", "html body must escape event names")
	assert.Contains(t, text, `"Expo <2025>"`)
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
