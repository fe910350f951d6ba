package scan

import (
	"strings"
	"testing"
)

func TestPageMessages_FormFeedPageNumbers(t *testing.T) {
	// Page 2 is blank and must still advance the page count.
	text := "Welcome\n\nSign <b>in</b>\nnow\f   \n\f{{count}} items\f"
	msgs := pageMessages(text, "deck.pdf")

	want := []struct {
		source string
		page   int
	}{
		{"Welcome", 1},
		{"Sign <b>in</b> now", 1},
		{"{{count}} items", 3},
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d: %+v", len(want), len(msgs), msgs)
	}
	for i, w := range want {
		if msgs[i].Source != w.source || msgs[i].Line != w.page || msgs[i].File != "deck.pdf" {
			t.Errorf("msg[%d]: expected %q on page %d, got %+v", i, w.source, w.page, msgs[i])
		}
	}
}

func TestSplitPages(t *testing.T) {
	pages := splitPages("one\ftwo\f\ffour")
	if len(pages) != 4 {
		t.Fatalf("expected 4 pages, got %d", len(pages))
	}
	if pages[1] != "two" || pages[2] != "" || pages[3] != "four" {
		t.Errorf("unexpected pages %q", pages)
	}
}

func TestPDFScanner_InvalidInput(t *testing.T) {
	s := &PDFScanner{}
	if _, err := s.Scan(strings.NewReader("not a pdf"), "bad.pdf"); err == nil {
		t.Error("expected error for invalid pdf")
	}
}
