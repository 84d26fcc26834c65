// Package scoring computes the deterministic candidate-job fit score: three
// weighted sub-scores (skills, experience, education) combined into an
// overall score and a match category.
package scoring

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// educationLevels ranks education keywords. Matching is case-insensitive
// substring containment; the first match in table order wins.
var educationLevels = []struct {
	keyword string
	rank    int
}{
	{"high school", 1},
	{"associate", 2},
	{"bachelor", 3},
	{"bachelor's", 3},
	{"master", 4},
	{"master's", 4},
	{"phd", 5},
	{"doctorate", 5},
}

// Engine computes score breakdowns. Safe for concurrent use.
type Engine struct {
	logger *zap.Logger
}

// New creates a scoring engine.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Score computes the full breakdown for a profile against job requirements.
// Total function: an unexpected internal failure is logged and converted to
// the worst-case breakdown so downstream ranking always receives a
// comparable number.
func (e *Engine) Score(profile *types.CandidateProfile, job *types.JobRequirements) (breakdown types.ScoreBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("score computation failed", zap.Any("panic", r))
			breakdown = types.ScoreBreakdown{
				OverallScore: 0.0,
				Category:     types.CategoryPoor,
			}
		}
	}()

	skills := SkillsScore(profile.Skills, job.Skills)
	experience := ExperienceScore(profile.ExperienceYears, job.MinimumExperience)
	education := EducationScore(profile.EducationLevel, job.EducationLevel)

	overall := round2(skills*types.SkillsWeight +
		experience*types.ExperienceWeight +
		education*types.EducationWeight)

	e.logger.Info("match scores",
		zap.Float64("skills", skills),
		zap.Float64("experience", experience),
		zap.Float64("education", education),
		zap.Float64("overall", overall),
	)

	return types.ScoreBreakdown{
		SkillsScore:     skills,
		ExperienceScore: experience,
		EducationScore:  education,
		OverallScore:    overall,
		Category:        Category(overall),
	}
}

// SkillsScore is the fraction of required skills present in the candidate's
// skills after normalization (lower-case, trimmed), capped at 1.0. No
// required skills means a perfect score; no candidate skills means zero.
func SkillsScore(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 1.0
	}
	if len(candidateSkills) == 0 {
		return 0.0
	}

	candidate := normalizeSkillSet(candidateSkills)
	required := normalizeSkillSet(requiredSkills)

	matched := 0
	for skill := range required {
		if candidate[skill] {
			matched++
		}
	}

	score := float64(matched) / float64(len(required))
	return math.Min(score, 1.0)
}

// ExperienceScore applies the tiered rule on candidate years against the
// free-text experience requirement. An unparseable requirement yields the
// neutral 0.5 rather than a penalty; exceeding the bar earns a bonus.
func ExperienceScore(candidateYears int, requiredExperience string) float64 {
	if requiredExperience == "" || strings.EqualFold(requiredExperience, "no experience required") {
		return 1.0
	}

	requiredYears, ok := ParseRequiredYears(requiredExperience)
	if !ok {
		return 0.5
	}

	candidate := float64(candidateYears)
	required := float64(requiredYears)
	switch {
	case candidate >= required:
		bonus := math.Min((candidate-required)*0.05, 0.2)
		return math.Min(1.0, 0.8+bonus)
	case candidate >= required*0.75:
		return 0.8
	case candidate >= required*0.5:
		return 0.6
	case candidateYears > 0:
		return 0.4
	default:
		// Non-zero floor: some credit for applying at all.
		return 0.2
	}
}

// EducationScore ranks both education strings against the level table. With
// no requirement, a bachelor's degree alone yields a perfect score; with a
// requirement, meeting or exceeding it is 1.0, one level below is 0.7, any
// recognized level below that is 0.4, and no recognized level is 0.0.
func EducationScore(candidateEducation, requiredEducation string) float64 {
	candidateLevel := educationRank(candidateEducation)

	if requiredEducation == "" {
		return math.Min(float64(candidateLevel)/3.0, 1.0)
	}

	requiredLevel := educationRank(requiredEducation)
	switch {
	case candidateLevel >= requiredLevel:
		return 1.0
	case candidateLevel >= requiredLevel-1:
		return 0.7
	case candidateLevel > 0:
		return 0.4
	default:
		return 0.0
	}
}

// Category assigns the match category by fixed thresholds, inclusive at the
// lower bound of each band.
func Category(score float64) string {
	switch {
	case score >= 0.8:
		return types.CategoryExcellent
	case score >= 0.6:
		return types.CategoryGood
	case score >= 0.4:
		return types.CategoryFair
	default:
		return types.CategoryPoor
	}
}

// educationRank returns the rank of the first table keyword contained in
// the text, or 0 when none matches.
func educationRank(education string) int {
	lower := strings.ToLower(education)
	for _, level := range educationLevels {
		if strings.Contains(lower, level.keyword) {
			return level.rank
		}
	}
	return 0
}

// normalizeSkillSet lower-cases and trims skills into a set for comparison.
func normalizeSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		set[strings.ToLower(strings.TrimSpace(skill))] = true
	}
	return set
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
