package catalog

import (
	"bytes"
	"strings"
	"testing"
)

func TestResource_Flat(t *testing.T) {
	cat := Build([]Message{
		{Key: "a.b", Source: "One"},
		{Source: "Hi <b>there</b>."},
	}, Options{})

	res := cat.Resource("")
	if len(res) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(res))
	}
	if res["a.b"] != "One" {
		t.Errorf("expected flat key a.b, got %v", res["a.b"])
	}
	if res["Hi <1>there</1>."] != "Hi <1>there</1>." {
		t.Errorf("expected natural key, got %v", res)
	}
}

func TestResource_Nested(t *testing.T) {
	cat := Build([]Message{
		{Key: "nav.home", Source: "Home"},
		{Key: "nav.about", Source: "About"},
		{Key: "footer.legal.terms", Source: "<Link>Terms</Link>"},
		{Key: "nav.home.icon", Source: "House"},
		{Key: "nav", Source: "Navigation"},
		{Key: "trailing.", Source: "Dot"},
	}, Options{})

	res := cat.Resource(".")
	nav, ok := res["nav"].(map[string]any)
	if !ok {
		t.Fatalf("expected nav object, got %T", res["nav"])
	}
	if nav["home"] != "Home" {
		t.Errorf("expected existing leaf to stay, got %v", nav["home"])
	}
	if nav["home.icon"] != "House" {
		t.Errorf("expected colliding key kept flat under nav, got %v", nav)
	}
	if nav["about"] != "About" {
		t.Errorf("expected nav.about, got %v", nav["about"])
	}
	legal := res["footer"].(map[string]any)["legal"].(map[string]any)
	if legal["terms"] != "<1>Terms</1>" {
		t.Errorf("expected footer.legal.terms, got %v", legal["terms"])
	}
	if res["trailing."] != "Dot" {
		t.Errorf("expected empty-segment key to stay flat, got %v", res["trailing."])
	}
}

func TestEncodeJSON_NoHTMLEscaping(t *testing.T) {
	var buf bytes.Buffer
	res := map[string]any{"k": "I agree to the <1>terms</1> & more"}
	if err := EncodeJSON(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"k\": \"I agree to the <1>terms</1> & more\"\n}\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	res := map[string]any{
		"nav": map[string]any{"home": "Home"},
		"hi":  "Hello, <1>{{name}}</1>",
	}
	if err := EncodeYAML(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "nav:\n  home: Home\n") {
		t.Errorf("expected nested yaml, got %q", out)
	}
	if !strings.Contains(out, "hi: Hello, <1>{{name}}</1>") {
		t.Errorf("expected placeholder text, got %q", out)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, map[string]any{}, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
