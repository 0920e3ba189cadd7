package preset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByIDKnownModes(t *testing.T) {
	for _, id := range []ID{Crime, TradingCard, Mugshot, Yearbook, ReportCard} {
		p := ByID(string(id))
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.Label)
		assert.NotEmpty(t, p.ExportTitle)
		assert.NotEmpty(t, p.ContextPrompt)
	}
}

func TestByIDUnknownFallsBackToCrime(t *testing.T) {
	for _, id := range []string{"", "unknown", "CRIME"} {
		p := ByID(id)
		assert.Equal(t, Crime, p.ID, "id %q", id)
	}
}

func TestSystemPromptFor(t *testing.T) {
	assert.Equal(t, DefaultSystemPrompt, SystemPromptFor(string(Crime)))
	assert.Equal(t, DefaultSystemPrompt, SystemPromptFor("nonsense"))

	card := SystemPromptFor(string(ReportCard))
	assert.NotEqual(t, DefaultSystemPrompt, card)
	assert.Contains(t, card, "Santa")
}

func TestDefaultPromptNamesSectionHeaders(t *testing.T) {
	// the compositor's section parser keys off these exact phrases
	for _, h := range []string{
		"Crime Scene:",
		"What's in the Frame?",
		"What Might Have Happened Here:",
		"How This Helps Solve the Crime:",
		"Verdict:",
	} {
		assert.True(t, strings.Contains(DefaultSystemPrompt, h), "missing header %q", h)
	}
}

func TestAllIsStable(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	assert.Equal(t, Crime, all[0].ID)

	// mutating the returned slice must not corrupt the registry
	all[0].Label = "tampered"
	assert.Equal(t, "Crime Scene", All()[0].Label)
}
