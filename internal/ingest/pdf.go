package ingest

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// extractPDF shells out to pdftotext (poppler-utils), the same conversion
// recruiters run by hand, and reads back the generated text file.
func extractPDF(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}

	txtPath := path + ".txt"
	defer os.Remove(txtPath)

	cmd := exec.Command("pdftotext", path, txtPath)
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}

	content, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("reading converted text: %w", err)
	}

	return strings.TrimSpace(string(content)), nil
}
