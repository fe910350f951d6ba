package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resource returns the catalog as an i18next resource object. With an
// empty separator the result is flat (key -> value). Otherwise keys are
// split on sep into nested objects; keys with empty segments stay flat, and
// a key that would replace an existing nested object is skipped.
func (c *Catalog) Resource(sep string) map[string]any {
	res := make(map[string]any, len(c.Entries))
	for _, e := range c.Entries {
		if sep == "" {
			res[e.Key] = e.Value
			continue
		}
		insertNested(res, e.Key, sep, e.Value)
	}
	return res
}

func insertNested(root map[string]any, key, sep, value string) {
	parts := strings.Split(key, sep)
	for _, p := range parts {
		if p == "" {
			if _, isMap := root[key].(map[string]any); !isMap {
				root[key] = value
			}
			return
		}
	}

	m := root
	for i, p := range parts[:len(parts)-1] {
		next, ok := m[p]
		if !ok {
			child := map[string]any{}
			m[p] = child
			m = child
			continue
		}
		child, isMap := next.(map[string]any)
		if !isMap {
			// A leaf already sits on this path.
			m[strings.Join(parts[i:], sep)] = value
			return
		}
		m = child
	}

	last := parts[len(parts)-1]
	if _, isMap := m[last].(map[string]any); isMap {
		return
	}
	m[last] = value
}

// EncodeJSON writes res as indented JSON without HTML escaping, so
// placeholders stay readable as <1>...</1>.
func EncodeJSON(w io.Writer, res map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode json resource: %w", err)
	}
	return nil
}

// EncodeYAML writes res as YAML.
func EncodeYAML(w io.Writer, res map[string]any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode yaml resource: %w", err)
	}
	return enc.Close()
}

// Encode writes res in the named format ("json" or "yaml").
func Encode(w io.Writer, res map[string]any, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		return EncodeJSON(w, res)
	case "yaml", "yml":
		return EncodeYAML(w, res)
	default:
		return fmt.Errorf("unsupported resource format: %s", format)
	}
}
