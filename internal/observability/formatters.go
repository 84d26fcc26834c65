// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtraction outputs a short summary of the extracted resume text.
func (p *Printer) PrintExtraction(filename, text string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:       %s\n", filename))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", len(text)))

	preview := text
	if len(preview) > 150 {
		preview = preview[:147] + "..."
	}
	sb.WriteString(fmt.Sprintf("Preview:    %s", preview))

	p.printBox("EXTRACTED TEXT", sb.String())
}

// PrintProfile outputs a human-readable summary of the candidate profile.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", profile.EducationLevel))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.KeyAchievements) > 0 {
		sb.WriteString("\nKey Achievements:\n")
		count := min(len(profile.KeyAchievements), 3)
		for i := 0; i < count; i++ {
			achievement := profile.KeyAchievements[i]
			if len(achievement) > 50 {
				achievement = achievement[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", achievement))
		}
	}

	if profile.ExtractionError != "" {
		sb.WriteString(fmt.Sprintf("\nFallback profile (parse error: %s)\n", profile.ExtractionError))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the score breakdown with sub-scores and category.
func (p *Printer) PrintBreakdown(breakdown types.ScoreBreakdown) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:     %.2f (weight %.2f)\n", breakdown.SkillsScore, types.SkillsWeight))
	sb.WriteString(fmt.Sprintf("Experience: %.2f (weight %.2f)\n", breakdown.ExperienceScore, types.ExperienceWeight))
	sb.WriteString(fmt.Sprintf("Education:  %.2f (weight %.2f)\n", breakdown.EducationScore, types.EducationWeight))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:    %.2f\n", breakdown.OverallScore))
	sb.WriteString(fmt.Sprintf("Category:   %s", breakdown.Category))

	p.printBox("MATCH SCORE", sb.String())
}
