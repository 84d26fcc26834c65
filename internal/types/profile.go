package types

// CandidateProfile is the normalized candidate record produced by the
// analysis stage. A new profile is produced per pipeline run and never
// mutated afterward.
type CandidateProfile struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
	KeyAchievements []string `json:"key_achievements"`
	Summary         string   `json:"summary"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`

	// ExtractionError records why a fallback profile was substituted for
	// the model's output. Empty on a clean parse.
	ExtractionError string `json:"extraction_error,omitempty"`
}
