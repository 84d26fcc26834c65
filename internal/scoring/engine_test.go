package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestSkillsScore_NoRequiredSkills(t *testing.T) {
	assert.Equal(t, 1.0, SkillsScore([]string{"Go"}, nil))
	assert.Equal(t, 1.0, SkillsScore(nil, []string{}))
}

func TestSkillsScore_NoCandidateSkills(t *testing.T) {
	assert.Equal(t, 0.0, SkillsScore(nil, []string{"Go"}))
	assert.Equal(t, 0.0, SkillsScore([]string{}, []string{"Go"}))
}

func TestSkillsScore_FullMatch(t *testing.T) {
	assert.Equal(t, 1.0, SkillsScore([]string{"Go", "SQL"}, []string{"Go", "SQL"}))
}

func TestSkillsScore_PartialMatch(t *testing.T) {
	assert.Equal(t, 0.5, SkillsScore([]string{"Go"}, []string{"Go", "SQL"}))
}

func TestSkillsScore_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, SkillsScore([]string{"  GO ", "postgresql"}, []string{"go", " PostgreSQL"}))
}

func TestSkillsScore_ExtraCandidateSkillsNoBonus(t *testing.T) {
	assert.Equal(t, 1.0, SkillsScore([]string{"Go", "SQL", "Rust", "C"}, []string{"Go"}))
}

func TestExperienceScore_NoRequirement(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceScore(0, ""))
	assert.Equal(t, 1.0, ExperienceScore(0, "No Experience Required"))
}

func TestExperienceScore_UnparseableRequirementIsNeutral(t *testing.T) {
	assert.Equal(t, 0.5, ExperienceScore(10, "significant industry experience"))
}

func TestExperienceScore_MeetsRequirementExactly(t *testing.T) {
	assert.Equal(t, 0.8, ExperienceScore(3, "3+ years"))
}

func TestExperienceScore_ExceedsRequirementEarnsBonus(t *testing.T) {
	assert.InDelta(t, 0.9, ExperienceScore(5, "3+ years"), 1e-9)
}

func TestExperienceScore_BonusCapped(t *testing.T) {
	assert.Equal(t, 1.0, ExperienceScore(30, "3+ years"))
}

func TestExperienceScore_ThreeQuartersOfRequirement(t *testing.T) {
	// 3 of 4 required years is exactly the 0.75 boundary.
	assert.Equal(t, 0.8, ExperienceScore(3, "4 years"))
}

func TestExperienceScore_HalfOfRequirement(t *testing.T) {
	assert.Equal(t, 0.6, ExperienceScore(2, "4 years"))
}

func TestExperienceScore_SomeExperienceBelowHalf(t *testing.T) {
	assert.Equal(t, 0.4, ExperienceScore(1, "10 years"))
}

func TestExperienceScore_NoExperienceFloor(t *testing.T) {
	assert.Equal(t, 0.2, ExperienceScore(0, "3+ years"))
}

func TestEducationScore_NoRequirement(t *testing.T) {
	assert.Equal(t, 1.0, EducationScore("PhD in Computer Science", ""))
	assert.Equal(t, 1.0, EducationScore("Bachelor of Science", ""))
	assert.InDelta(t, 2.0/3.0, EducationScore("Associate degree", ""), 1e-9)
	assert.Equal(t, 0.0, EducationScore("Unknown", ""))
}

func TestEducationScore_MeetsOrExceedsRequirement(t *testing.T) {
	assert.Equal(t, 1.0, EducationScore("Master's degree", "Bachelor's degree"))
	assert.Equal(t, 1.0, EducationScore("Bachelor's degree", "Bachelor's degree"))
}

func TestEducationScore_OneLevelBelow(t *testing.T) {
	assert.Equal(t, 0.7, EducationScore("Bachelor's degree", "Master's degree"))
}

func TestEducationScore_FarBelowRequirement(t *testing.T) {
	assert.Equal(t, 0.4, EducationScore("High school diploma", "Master's degree"))
}

func TestEducationScore_UnrecognizedCandidateLevel(t *testing.T) {
	assert.Equal(t, 0.0, EducationScore("Unknown", "Bachelor's degree"))
}

func TestEducationScore_CaseInsensitiveSubstring(t *testing.T) {
	assert.Equal(t, 1.0, EducationScore("MASTER OF SCIENCE, MIT", "bachelor"))
}

func TestCategory_Thresholds(t *testing.T) {
	assert.Equal(t, types.CategoryExcellent, Category(0.8))
	assert.Equal(t, types.CategoryExcellent, Category(0.97))
	assert.Equal(t, types.CategoryGood, Category(0.79))
	assert.Equal(t, types.CategoryGood, Category(0.6))
	assert.Equal(t, types.CategoryFair, Category(0.59))
	assert.Equal(t, types.CategoryFair, Category(0.4))
	assert.Equal(t, types.CategoryPoor, Category(0.39))
	assert.Equal(t, types.CategoryPoor, Category(0.0))
}

func TestScore_WeightedOverall(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:          []string{"Go", "PostgreSQL", "Docker"},
		ExperienceYears: 5,
		EducationLevel:  "Bachelor's degree",
	}
	job := &types.JobRequirements{
		Title:             "Backend Engineer",
		Skills:            []string{"Go", "PostgreSQL", "Docker"},
		MinimumExperience: "3+ years",
		EducationLevel:    "Bachelor's degree",
	}

	breakdown := New(nil).Score(profile, job)

	assert.Equal(t, 1.0, breakdown.SkillsScore)
	assert.InDelta(t, 0.9, breakdown.ExperienceScore, 1e-9)
	assert.Equal(t, 1.0, breakdown.EducationScore)
	// 1.0*0.5 + 0.9*0.3 + 1.0*0.2
	assert.Equal(t, 0.97, breakdown.OverallScore)
	assert.Equal(t, types.CategoryExcellent, breakdown.Category)
}

func TestScore_RoundsToTwoDecimals(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:          []string{"Go"},
		ExperienceYears: 0,
		EducationLevel:  "Bachelor's degree",
	}
	job := &types.JobRequirements{
		Title:  "Engineer",
		Skills: []string{"Go", "SQL", "Rust"},
	}

	breakdown := New(nil).Score(profile, job)

	// 1/3*0.5 + 1.0*0.3 + 1.0*0.2 = 0.66666... -> 0.67
	assert.Equal(t, 0.67, breakdown.OverallScore)
	assert.Equal(t, types.CategoryGood, breakdown.Category)
}

func TestScore_WorstCase(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:          []string{},
		ExperienceYears: 0,
		EducationLevel:  "Unknown",
	}
	job := &types.JobRequirements{
		Title:             "Engineer",
		Skills:            []string{"Go"},
		MinimumExperience: "5 years",
		EducationLevel:    "PhD",
	}

	breakdown := New(nil).Score(profile, job)

	assert.Equal(t, 0.0, breakdown.SkillsScore)
	assert.Equal(t, 0.2, breakdown.ExperienceScore)
	assert.Equal(t, 0.0, breakdown.EducationScore)
	assert.Equal(t, 0.06, breakdown.OverallScore)
	assert.Equal(t, types.CategoryPoor, breakdown.Category)
}

func TestScore_NilProfileRecovered(t *testing.T) {
	job := &types.JobRequirements{Title: "Engineer", Skills: []string{"Go"}}

	breakdown := New(nil).Score(nil, job)

	assert.Equal(t, 0.0, breakdown.OverallScore)
	assert.Equal(t, types.CategoryPoor, breakdown.Category)
}

func TestWeights_SumToOne(t *testing.T) {
	assert.Equal(t, 1.0, types.SkillsWeight+types.ExperienceWeight+types.EducationWeight)
}
