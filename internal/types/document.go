package types

import (
	"path/filepath"
	"strings"
)

// Format identifies the declared format of an uploaded resume document.
type Format string

// Supported document format tags. FormatDoc is recognized but never
// extracted; see the extraction package.
const (
	FormatPDF         Format = "pdf"
	FormatDocx        Format = "docx"
	FormatDoc         Format = "doc"
	FormatUnsupported Format = "unsupported"
)

// RawDocument is a resume file as received from the upload layer: raw bytes
// plus the filename whose extension declares the format.
type RawDocument struct {
	Filename string
	Data     []byte
}

// Format returns the declared format derived from the filename extension.
func (d RawDocument) Format() Format {
	return FormatFromFilename(d.Filename)
}

// FormatFromFilename derives the document format from a file name suffix,
// case-insensitively.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDocx
	case ".doc":
		return FormatDoc
	default:
		return FormatUnsupported
	}
}
