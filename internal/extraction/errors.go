package extraction

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// UnsupportedFormatError indicates the document format is not handled at
// all: either an unknown extension or the legacy .doc format, for which no
// extraction strategy exists.
type UnsupportedFormatError struct {
	Filename string
	Format   types.Format
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == types.FormatDoc {
		return fmt.Sprintf("unsupported format .doc (%s): legacy format, convert to .docx or .pdf", e.Filename)
	}
	return fmt.Sprintf("unsupported file format: %s (supported: .pdf, .docx)", e.Filename)
}

// ExtractionError indicates every extraction strategy for a supported
// format failed or produced no usable text.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
