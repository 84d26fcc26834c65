package scoring

import (
	"regexp"
	"strconv"
)

var yearsPattern = regexp.MustCompile(`\d+`)

// ParseRequiredYears extracts the required years of experience from a
// free-text requirement such as "3+ years" or "minimum of 5 years". It
// returns the first integer substring found, or false when the text
// contains no number at all.
func ParseRequiredYears(requirement string) (int, bool) {
	digits := yearsPattern.FindString(requirement)
	if digits == "" {
		return 0, false
	}
	years, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return years, true
}
