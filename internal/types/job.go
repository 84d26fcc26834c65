// Package types defines the shared data model for the screening pipeline.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JobRequirements describes the position a candidate is screened against.
// It is an immutable input: the pipeline never modifies it.
type JobRequirements struct {
	Title             string   `json:"job_title" validate:"required"`
	Description       string   `json:"description,omitempty"`
	Skills            []string `json:"skills"`
	MinimumExperience string   `json:"minimum_experience,omitempty"`
	EducationLevel    string   `json:"education_level,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the job requirements are usable as pipeline input.
// Skills may be empty (a job with no skill requirements is valid), but a
// title is always required.
func (j *JobRequirements) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job requirements: %w", err)
	}
	return nil
}
