package catalog

import "testing"

func TestBuild_SerializesMessages(t *testing.T) {
	msgs := []Message{
		{Source: "Hello, {{name}}", File: "a.txt", Line: 1},
		{Key: "terms", Source: "I agree to the <Link>terms</Link>.", File: "a.txt", Line: 3},
		{Source: "  One &amp; two  "},
	}
	cat := Build(msgs, Options{})

	if len(cat.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(cat.Entries))
	}

	want := []Entry{
		{Key: "Hello, <1>{{name}}</1>", Value: "Hello, <1>{{name}}</1>", Source: "Hello, {{name}}", File: "a.txt", Line: 1, Placeholders: 1},
		{Key: "terms", Value: "I agree to the <1>terms</1>.", Source: "I agree to the <Link>terms</Link>.", File: "a.txt", Line: 3, Placeholders: 1},
		{Key: "One & two", Value: "One & two", Source: "One &amp; two"},
	}
	for i, w := range want {
		if cat.Entries[i] != w {
			t.Errorf("entry[%d]: expected %+v, got %+v", i, w, cat.Entries[i])
		}
	}
	if len(cat.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %+v", cat.Conflicts)
	}
}

func TestBuild_SkipsEmptySources(t *testing.T) {
	cat := Build([]Message{{Source: ""}, {Source: "   \n"}}, Options{})
	if len(cat.Entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(cat.Entries))
	}
	if cat.Entries == nil || cat.Conflicts == nil {
		t.Error("expected non-nil slices for JSON output")
	}
}

func TestBuild_DuplicatesAndConflicts(t *testing.T) {
	msgs := []Message{
		{Key: "greeting", Source: "Hi {{name}}", File: "a.html"},
		{Key: "greeting", Source: "Hi {{name}}", File: "b.html"},
		{Key: "greeting", Source: "Hello <b>{{name}}</b>", File: "c.html", Line: 9},
		{Source: "Same text"},
		{Source: "Same text"},
	}
	cat := Build(msgs, Options{})

	if len(cat.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(cat.Entries))
	}
	if cat.Entries[0].File != "a.html" {
		t.Errorf("expected first occurrence to win, got file %q", cat.Entries[0].File)
	}
	if len(cat.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(cat.Conflicts))
	}
	c := cat.Conflicts[0]
	if c.Key != "greeting" || c.Kept != "Hi <1>{{name}}</1>" || c.Dropped != "Hello <1><2>{{name}}</2></1>" {
		t.Errorf("unexpected conflict: %+v", c)
	}
	if c.File != "c.html" || c.Line != 9 {
		t.Errorf("expected conflict location c.html:9, got %s:%d", c.File, c.Line)
	}
}

func TestBuild_KeyPrefix(t *testing.T) {
	cat := Build([]Message{
		{Source: "Save"},
		{Key: "explicit", Source: "Cancel"},
	}, Options{KeyPrefix: "common:"})

	if _, ok := cat.Lookup("common:Save"); !ok {
		t.Error("expected prefixed natural key")
	}
	if _, ok := cat.Lookup("explicit"); !ok {
		t.Error("expected explicit key to be left alone")
	}
}

func TestBuild_SectionKeys(t *testing.T) {
	msgs := []Message{
		{Source: "Pay now", Section: []string{"Checkout", "Payment Options"}},
		{Source: "Pay later", Section: []string{"Checkout", "Payment Options"}},
		{Source: "Welcome"},
		{Source: "Title", Section: []string{"!!!"}},
	}
	cat := Build(msgs, Options{SectionKeys: true, KeySeparator: "."})

	keys := []string{"checkout.payment-options.1", "checkout.payment-options.2", "Welcome", "Title"}
	if len(cat.Entries) != len(keys) {
		t.Fatalf("expected %d entries, got %d", len(keys), len(cat.Entries))
	}
	for i, k := range keys {
		if cat.Entries[i].Key != k {
			t.Errorf("entry[%d]: expected key %q, got %q", i, k, cat.Entries[i].Key)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Checkout", "checkout"},
		{"  Payment Options ", "payment-options"},
		{"A -- B", "a-b"},
		{"!!!", ""},
		{"Ünïcode", "n-code"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
