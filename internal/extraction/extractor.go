// Package extraction converts uploaded resume documents into cleaned plain
// text. Each supported format has a primary extraction strategy and, for
// PDF, an automatic fallback; cleaning normalizes whitespace so downstream
// prompting sees a compact single-spaced text.
package extraction

import (
	"github.com/jonathan/resume-screener/internal/types"
)

// Extractor converts raw documents into cleaned plain text.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract dispatches on the document's declared format and returns cleaned
// text. It returns *UnsupportedFormatError for formats with no extraction
// strategy and *ExtractionError when every strategy for a supported format
// fails or yields no usable text.
func (e *Extractor) Extract(doc types.RawDocument) (string, error) {
	var (
		text string
		err  error
	)

	switch doc.Format() {
	case types.FormatPDF:
		text, err = e.extractPDF(doc.Data)
	case types.FormatDocx:
		text, err = e.extractDocx(doc.Data)
	case types.FormatDoc:
		return "", &UnsupportedFormatError{Filename: doc.Filename, Format: types.FormatDoc}
	default:
		return "", &UnsupportedFormatError{Filename: doc.Filename, Format: types.FormatUnsupported}
	}
	if err != nil {
		return "", err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &ExtractionError{Message: "no text could be extracted from resume"}
	}
	return cleaned, nil
}
