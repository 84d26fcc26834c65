package extraction

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF runs the primary page-by-page extraction and falls back to the
// whole-document content-stream reader when the primary strategy fails or
// returns no text. Each strategy opens its own reader so a failure in one
// cannot affect the other.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	text, err := extractPDFPages(data)
	if err == nil && text != "" {
		return text, nil
	}

	text, fallbackErr := extractPDFStream(data)
	if fallbackErr != nil {
		return "", &ExtractionError{
			Message: "all PDF extraction strategies failed",
			Cause:   fallbackErr,
		}
	}
	return text, nil
}

// extractPDFPages extracts text page by page in layout order.
func extractPDFPages(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf page extraction panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return "", fmt.Errorf("failed to extract page %d: %w", i, pageErr)
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// extractPDFStream extracts text from the whole document in a single pass.
// Simpler than the page-by-page strategy but less faithful to layout.
func extractPDFStream(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf stream extraction panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	stream, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text stream: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, stream); err != nil {
		return "", fmt.Errorf("failed to buffer PDF text: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
