package scan

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
)

// Scanner finds translatable messages in raw file bytes.
type Scanner interface {
	Scan(r io.Reader, filename string) ([]catalog.Message, error)
}

// Options tunes the scanners returned by ForFile.
type Options struct {
	PDFFallbackPdftotext bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate scanner for a filename.
func ForFile(filename string, opts Options) (Scanner, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextScanner{}, nil
	case ".md", ".markdown":
		return &MarkdownScanner{}, nil
	case ".csv":
		return &CSVScanner{}, nil
	case ".html", ".htm":
		return &HTMLScanner{}, nil
	case ".pdf":
		return &PDFScanner{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXScanner{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Format returns the metrics label for a filename, e.g. "md".
func Format(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".markdown":
		return "md"
	case ".htm":
		return "html"
	case "":
		return "none"
	}
	if !SupportedExtensions[ext] {
		return "other"
	}
	return strings.TrimPrefix(ext, ".")
}
