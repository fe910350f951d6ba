package scan

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFScanner handles PDF copy decks. It tries the Go library first,
// then falls back to pdftotext if available. Each blank-line separated
// paragraph is a message; Line is the page number.
type PDFScanner struct {
	FallbackPdftotext bool
}

func (s *PDFScanner) Scan(r io.Reader, filename string) ([]catalog.Message, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "jsxtext-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := extractPDFText(tmpPath)
	if err != nil && s.FallbackPdftotext {
		text, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return pageMessages(text, filename), nil
}

// pageMessages turns form-feed separated page text into messages whose
// Line is the 1-based page number.
func pageMessages(text, filename string) []catalog.Message {
	var msgs []catalog.Message
	for i, page := range splitPages(text) {
		for _, para := range splitParagraphs(page) {
			msgs = append(msgs, catalog.Message{
				Source: para,
				File:   filename,
				Line:   i + 1,
			})
		}
	}
	return msgs
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if i > 1 {
			buf.WriteString("\f") // Form feed keeps page numbers aligned.
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

func splitPages(text string) []string {
	return strings.Split(text, "\f")
}

// splitParagraphs splits a page on blank lines and folds each paragraph's
// lines into one line.
func splitParagraphs(page string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(page, "\r\n", "\n"), "\n\n") {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			out = append(out, p)
		}
	}
	return out
}
