package catalog

import (
	"strconv"
	"strings"

	"github.com/dgallion1/jsxtext/internal/jsx"
)

// Options controls how messages become entries.
type Options struct {
	// KeyPrefix is prepended to natural-language keys only.
	KeyPrefix string
	// SectionKeys derives natural keys from the message section
	// (slugified, joined with KeySeparator) instead of the text itself.
	SectionKeys  bool
	KeySeparator string
}

// Build serializes every message and collects the results into a catalog.
// The first entry for a key wins; later entries with a different value are
// reported as conflicts.
func Build(msgs []Message, opts Options) *Catalog {
	cat := &Catalog{
		Entries:   []Entry{},
		Conflicts: []Conflict{},
	}
	index := make(map[string]int)
	sectionCounts := make(map[string]int)

	for _, m := range msgs {
		src := strings.TrimSpace(m.Source)
		if src == "" {
			continue
		}
		nodes := jsx.ParseJSX(src)
		value := jsx.Serialize(nodes)

		key := m.Key
		if key == "" {
			key = naturalKey(m, value, opts, sectionCounts)
		}

		if i, ok := index[key]; ok {
			if cat.Entries[i].Value != value {
				cat.Conflicts = append(cat.Conflicts, Conflict{
					Key:     key,
					Kept:    cat.Entries[i].Value,
					Dropped: value,
					File:    m.File,
					Line:    m.Line,
				})
			}
			continue
		}

		index[key] = len(cat.Entries)
		cat.Entries = append(cat.Entries, Entry{
			Key:          key,
			Value:        value,
			Source:       src,
			File:         m.File,
			Line:         m.Line,
			Placeholders: jsx.CountPlaceholders(nodes),
		})
	}

	return cat
}

func naturalKey(m Message, value string, opts Options, sectionCounts map[string]int) string {
	if !opts.SectionKeys || len(m.Section) == 0 {
		return opts.KeyPrefix + value
	}

	sep := opts.KeySeparator
	if sep == "" {
		sep = "."
	}
	parts := make([]string, 0, len(m.Section)+1)
	for _, s := range m.Section {
		if slug := Slugify(s); slug != "" {
			parts = append(parts, slug)
		}
	}
	if len(parts) == 0 {
		return opts.KeyPrefix + value
	}
	base := opts.KeyPrefix + strings.Join(parts, sep)
	sectionCounts[base]++
	return base + sep + strconv.Itoa(sectionCounts[base])
}
