package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestSystemPrompt_EstablishesJSONConstraint(t *testing.T) {
	prompt := SystemPrompt()
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "JSON")
}

func TestBuildAnalysisPrompt_EmbedsInputsVerbatim(t *testing.T) {
	job := &types.JobRequirements{
		Title:             "Data Engineer",
		Description:       "Build pipelines",
		Skills:            []string{"Python", "Airflow"},
		MinimumExperience: "5 years",
	}

	prompt := BuildAnalysisPrompt("resume body here", job)

	assert.Contains(t, prompt, "resume body here")
	assert.Contains(t, prompt, "Data Engineer")
	assert.Contains(t, prompt, "Python, Airflow")
	assert.Contains(t, prompt, "5 years")
	assert.Contains(t, prompt, "Build pipelines")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildAnalysisPrompt_Deterministic(t *testing.T) {
	job := &types.JobRequirements{Title: "Engineer", Skills: []string{"Go"}}

	first := BuildAnalysisPrompt("same text", job)
	second := BuildAnalysisPrompt("same text", job)
	assert.Equal(t, first, second)
}

func TestBuildAnalysisPrompt_BlankFieldsBecomeNA(t *testing.T) {
	job := &types.JobRequirements{Title: "Engineer", Skills: []string{"Go"}}

	prompt := BuildAnalysisPrompt("text", job)
	assert.Contains(t, prompt, "N/A")
}
