package extraction

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText normalizes extracted text: blank lines are dropped, surviving
// lines are rejoined, and every whitespace run (including the rejoining
// newlines) collapses to a single space. Total and idempotent: it never
// fails, and CleanText(CleanText(x)) == CleanText(x) for any input.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			kept = append(kept, trimmed)
		}
	}

	joined := strings.Join(kept, "\n")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(joined, " "))
}
