package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorLocales(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "You're not part of this plan.", tr.T("en", "error.not_participant", nil))
	assert.Equal(t, "No formas parte de este plan.", tr.T("es", "error.not_participant", nil))

	// Unknown locale falls back to the default.
	assert.Equal(t, "You're not part of this plan.", tr.T("fr", "error.not_participant", nil))
	// Empty locale uses the default too.
	assert.Equal(t, "Only the organizer can do that.", tr.T("", "error.not_organizer", nil))
}

func TestTranslatorTemplateData(t *testing.T) {
	tr := NewTranslator("en")

	msg := tr.T("en", "thread.created", map[string]any{"ActivityName": "Soccer"})
	assert.Equal(t, `Your plan "Soccer" is ready.`, msg)

	msg = tr.T("es", "thread.rsvp_updated", map[string]any{"Status": "going"})
	assert.Equal(t, "Tu asistencia quedó como going.", msg)
}

func TestTranslatorUnknownKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "nope.missing", tr.T("en", "nope.missing", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}
