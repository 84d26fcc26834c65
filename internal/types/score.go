package types

// Scoring weights for the three sub-scores. They must sum to exactly 1.0.
const (
	SkillsWeight     = 0.50
	ExperienceWeight = 0.30
	EducationWeight  = 0.20
)

// Match category labels assigned by thresholding the overall score.
const (
	CategoryExcellent = "Excellent Match"
	CategoryGood      = "Good Match"
	CategoryFair      = "Fair Match"
	CategoryPoor      = "Poor Match"
)

// ScoreBreakdown holds the three sub-scores, the weighted overall score
// (rounded to 2 decimal places) and the derived category label.
type ScoreBreakdown struct {
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	OverallScore    float64 `json:"overall_score"`
	Category        string  `json:"category"`
}
