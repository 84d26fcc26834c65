package analysis

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/types"
)

// SystemPrompt returns the fixed instruction establishing the recruiter
// persona and the JSON-only output constraint.
func SystemPrompt() string {
	return prompts.MustGet("analysis.json", "system")
}

// BuildAnalysisPrompt constructs the deterministic analysis prompt from the
// resume text and job requirements. The same inputs always produce the same
// prompt.
func BuildAnalysisPrompt(resumeText string, job *types.JobRequirements) string {
	template := prompts.MustGet("analysis.json", "analyze-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText":        resumeText,
		"JobTitle":          orNA(job.Title),
		"RequiredSkills":    strings.Join(job.Skills, ", "),
		"MinimumExperience": orNA(job.MinimumExperience),
		"Description":       orNA(job.Description),
	})
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
