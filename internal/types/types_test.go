package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"resume.pdf", FormatPDF},
		{"Resume.PDF", FormatPDF},
		{"cv.docx", FormatDocx},
		{"CV.DocX", FormatDocx},
		{"old.doc", FormatDoc},
		{"notes.txt", FormatUnsupported},
		{"noextension", FormatUnsupported},
		{"archive.pdf.zip", FormatUnsupported},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.format, FormatFromFilename(tt.name), "filename %q", tt.name)
	}
}

func TestRawDocument_Format(t *testing.T) {
	doc := RawDocument{Filename: "dir/sub/resume.docx"}
	assert.Equal(t, FormatDocx, doc.Format())
}

func TestJobRequirements_Validate(t *testing.T) {
	job := JobRequirements{Title: "Engineer"}
	assert.NoError(t, job.Validate())
}

func TestJobRequirements_ValidateMissingTitle(t *testing.T) {
	job := JobRequirements{Skills: []string{"Go"}}
	err := job.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job requirements")
}

func TestJobRequirements_EmptySkillsAllowed(t *testing.T) {
	job := JobRequirements{Title: "Intern", Skills: []string{}}
	assert.NoError(t, job.Validate())
}
