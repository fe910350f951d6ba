package scan

import (
	"strings"
	"testing"
)

func TestCSVScanner_WithHeader(t *testing.T) {
	input := "note,key,value\nx,greeting,\"Hello, {{name}}\"\ny,terms,I agree to the <Link>terms</Link>.\nshort\n"
	s := &CSVScanner{}
	msgs, err := s.Scan(strings.NewReader(input), "copy.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Key != "greeting" || msgs[0].Source != "Hello, {{name}}" || msgs[0].Line != 2 {
		t.Errorf("msg[0]: unexpected %+v", msgs[0])
	}
	if msgs[1].Key != "terms" || msgs[1].Line != 3 {
		t.Errorf("msg[1]: unexpected %+v", msgs[1])
	}
}

func TestCSVScanner_SourceHeader(t *testing.T) {
	input := "Key,Source\nsave,Save\n"
	s := &CSVScanner{}
	msgs, err := s.Scan(strings.NewReader(input), "copy.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Key != "save" || msgs[0].Source != "Save" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestCSVScanner_NoHeader(t *testing.T) {
	input := "save,Save\ncancel,Cancel\n"
	s := &CSVScanner{}
	msgs, err := s.Scan(strings.NewReader(input), "copy.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Key != "save" || msgs[1].Source != "Cancel" {
		t.Errorf("unexpected messages: %+v", msgs)
	}
}

func TestCSVScanner_Empty(t *testing.T) {
	s := &CSVScanner{}
	msgs, err := s.Scan(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected 0 messages, got %d", len(msgs))
	}
}
