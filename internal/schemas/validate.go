// Package schemas provides JSON Schema validation for the structured
// records this core hands to its collaborators. Schemas are embedded at
// compile time so validation works regardless of working directory.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateProfile validates serialized candidate-profile JSON against the
// embedded schema. It returns *ValidationError when the document does not
// conform, or a plain error when the schema itself cannot be loaded.
func ValidateProfile(data []byte) error {
	return validate("candidate_profile.schema.json", data)
}

func validate(schemaName string, data []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate against %s: %w", schemaName, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
