package scan

import (
	"fmt"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.txt", "*scan.TextScanner"},
		{"a.MD", "*scan.MarkdownScanner"},
		{"a.markdown", "*scan.MarkdownScanner"},
		{"a.csv", "*scan.CSVScanner"},
		{"a.htm", "*scan.HTMLScanner"},
		{"a.pdf", "*scan.PDFScanner"},
		{"a.docx", "*scan.DOCXScanner"},
	}
	for _, tt := range tests {
		s, err := ForFile(tt.filename, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.filename, err)
		}
		if got := fmt.Sprintf("%T", s); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.want, got)
		}
	}

	if _, err := ForFile("a.exe", Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestForFile_PDFFallbackOption(t *testing.T) {
	s, err := ForFile("deck.pdf", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.(*PDFScanner).FallbackPdftotext {
		t.Error("expected fallback option to be passed through")
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"a.txt":      "txt",
		"a.markdown": "md",
		"a.HTM":      "html",
		"a.exe":      "other",
		"README":     "none",
	}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("Line one\ncontinues\n\n\n  Second  \r\n\r\nThird")
	want := []string{"Line one continues", "Second", "Third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
