package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// extractDocx extracts the text of every paragraph in document order,
// joined by newline. A .docx file is a zip archive whose main content
// lives in word/document.xml.
func (e *Extractor) extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to open DOCX archive", Cause: err}
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", &ExtractionError{Message: "no word/document.xml found in DOCX"}
	}

	rc, err := doc.Open()
	if err != nil {
		return "", &ExtractionError{Message: "failed to open word/document.xml", Cause: err}
	}
	defer rc.Close()

	text, err := decodeDocumentXML(rc)
	if err != nil {
		return "", &ExtractionError{Message: "failed to decode DOCX content", Cause: err}
	}
	return text, nil
}

// decodeDocumentXML walks the WordprocessingML token stream, collecting run
// text (w:t) and emitting a newline at each paragraph boundary (w:p).
func decodeDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
