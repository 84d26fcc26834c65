package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequiredYears_CommonForms(t *testing.T) {
	tests := []struct {
		input string
		years int
		ok    bool
	}{
		{"3+ years", 3, true},
		{"5 years", 5, true},
		{"minimum of 7 years", 7, true},
		{"at least 10 years of experience", 10, true},
		{"2", 2, true},
		{"", 0, false},
		{"entry level", 0, false},
		{"several years", 0, false},
	}

	for _, tt := range tests {
		years, ok := ParseRequiredYears(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.years, years, "input %q", tt.input)
	}
}

func TestParseRequiredYears_FirstNumberWins(t *testing.T) {
	years, ok := ParseRequiredYears("3 to 5 years")
	assert.True(t, ok)
	assert.Equal(t, 3, years)
}
