package ingest

import (
	"fmt"
	"strings"

	"baliance.com/gooxml/document"
)

// extractDOCX reads a Word document and joins the text of its paragraphs
// with newlines, so the line-oriented extractors see one paragraph per line.
func extractDOCX(path string) (string, error) {
	doc, err := document.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}

	var sb strings.Builder
	for i, para := range doc.Paragraphs() {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
	}

	return sb.String(), nil
}
