// Package analysis turns resume text and job requirements into a typed
// CandidateProfile via an external completion service. Malformed model
// output is never a hard error: partial responses get per-field defaults
// and unparseable responses get a fallback profile, so every run produces
// some usable profile.
package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/types"
)

// FailureMode controls how the analyzer handles a failed completion call.
type FailureMode int

const (
	// FailStrict propagates completion failures as *UpstreamError.
	FailStrict FailureMode = iota
	// FailDegraded substitutes the fallback profile on completion failure,
	// trading analytical accuracy for availability.
	FailDegraded
)

// fallbackSummary is the summary placed on a profile substituted for an
// unparseable completion response.
const fallbackSummary = "Error parsing AI response"

// Analyzer produces candidate profiles from resume text.
type Analyzer struct {
	client llm.Client
	logger *zap.Logger
	mode   FailureMode
}

// New creates an Analyzer around a completion client.
func New(client llm.Client, logger *zap.Logger, mode FailureMode) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		client: client,
		logger: logger,
		mode:   mode,
	}
}

// Analyze builds the analysis prompt, invokes the completion service and
// parses the response into a CandidateProfile. The only possible error is
// *UpstreamError in strict mode; every other condition yields a profile.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string, job *types.JobRequirements) (*types.CandidateProfile, error) {
	prompt := BuildAnalysisPrompt(resumeText, job)

	a.logger.Debug("completion request",
		zap.String("model", a.client.Model()),
		zap.Int("prompt_length", len(prompt)),
	)

	raw, err := a.client.Complete(ctx, SystemPrompt(), prompt)
	if err != nil {
		if a.mode == FailDegraded {
			a.logger.Warn("completion call failed, substituting fallback profile", zap.Error(err))
			return FallbackProfile(job, fmt.Sprintf("Error: %v", err), err.Error()), nil
		}
		return nil, &UpstreamError{Message: "completion call failed", Cause: err}
	}

	a.logger.Debug("completion response", zap.Int("response_length", len(raw)))

	return a.parseResponse(raw, job), nil
}

// analysisResponse mirrors the JSON shape requested from the model. The
// three mandatory keys are pointers so a missing key is distinguishable
// from a zero value. experience_years is accepted as a float because models
// occasionally return "5.0" for an integer field.
type analysisResponse struct {
	Skills          *[]string `json:"skills"`
	ExperienceYears *float64  `json:"experience_years"`
	EducationLevel  *string   `json:"education_level"`
	KeyAchievements []string  `json:"key_achievements"`
	Summary         string    `json:"summary"`
	MatchedSkills   []string  `json:"matched_skills"`
	MissingSkills   []string  `json:"missing_skills"`
}

// parseResponse normalizes a raw completion response into a profile:
// fence stripping, JSON parse, then per-field defaulting. A total parse
// failure yields the fallback profile, never an error.
func (a *Analyzer) parseResponse(raw string, job *types.JobRequirements) *types.CandidateProfile {
	content := llm.CleanJSONBlock(raw)

	var resp analysisResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		a.logger.Error("failed to parse completion response as JSON",
			zap.Error(err),
			zap.String("content_preview", preview(content, 500)),
		)
		return FallbackProfile(job, fallbackSummary, err.Error())
	}

	profile := &types.CandidateProfile{
		Skills:          []string{},
		EducationLevel:  "Unknown",
		KeyAchievements: emptyIfNil(resp.KeyAchievements),
		Summary:         resp.Summary,
		MatchedSkills:   emptyIfNil(resp.MatchedSkills),
		MissingSkills:   emptyIfNil(resp.MissingSkills),
	}

	if resp.Skills != nil {
		profile.Skills = *resp.Skills
	} else {
		a.logger.Warn("missing field in completion response", zap.String("field", "skills"))
	}

	if resp.ExperienceYears != nil {
		years := int(*resp.ExperienceYears)
		if years < 0 {
			years = 0
		}
		profile.ExperienceYears = years
	} else {
		a.logger.Warn("missing field in completion response", zap.String("field", "experience_years"))
	}

	if resp.EducationLevel != nil && *resp.EducationLevel != "" {
		profile.EducationLevel = *resp.EducationLevel
	} else {
		a.logger.Warn("missing field in completion response", zap.String("field", "education_level"))
	}

	return profile
}

// FallbackProfile is the default profile substituted when the completion
// response cannot be used at all. Nothing could be verified, so nothing is
// credited: missing_skills carries the entire required-skills list.
func FallbackProfile(job *types.JobRequirements, summary, cause string) *types.CandidateProfile {
	missing := make([]string, len(job.Skills))
	copy(missing, job.Skills)

	return &types.CandidateProfile{
		Skills:          []string{},
		ExperienceYears: 0,
		EducationLevel:  "Unknown",
		KeyAchievements: []string{},
		Summary:         summary,
		MatchedSkills:   []string{},
		MissingSkills:   missing,
		ExtractionError: cause,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
