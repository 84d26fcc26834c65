package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("analysis.json", "analyze-resume")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "{{.ResumeText}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("analysis.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "any")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("analysis.json", "nope")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Title: {{.Title}}, Skills: {{.Skills}}", map[string]string{
		"Title":  "Engineer",
		"Skills": "Go, SQL",
	})
	assert.Equal(t, "Title: Engineer, Skills: Go, SQL", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}
