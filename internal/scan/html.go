package scan

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"golang.org/x/net/html"
)

// KeyAttr marks an element whose content is a translatable message. Its
// value is the message key; an empty value means a natural-language key.
const KeyAttr = "data-i18n"

var spaceRun = regexp.MustCompile(`\s+`)

// HTMLScanner handles HTML files.
type HTMLScanner struct{}

func (s *HTMLScanner) Scan(r io.Reader, filename string) ([]catalog.Message, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var msgs []catalog.Message
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "template":
				return
			}
			if key, ok := attr(n, KeyAttr); ok {
				var buf strings.Builder
				renderMarkup(&buf, n)
				src := strings.TrimSpace(spaceRun.ReplaceAllString(buf.String(), " "))
				if src != "" {
					msgs = append(msgs, catalog.Message{Key: strings.TrimSpace(key), Source: src, File: filename})
				}
				return // Nested data-i18n elements belong to this message.
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return msgs, nil
}

// renderMarkup writes the children of n as Trans markup: attributes are
// dropped, text is escaped, void elements become <name></name>.
func renderMarkup(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			writeText(b, c.Data)
		case html.ElementNode:
			b.WriteString("<" + c.Data + ">")
			renderMarkup(b, c)
			b.WriteString("</" + c.Data + ">")
		}
	}
}

// writeText escapes text but copies complete {{...}} spans verbatim, since
// expression bodies are never entity-decoded.
func writeText(b *strings.Builder, s string) {
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			break
		}
		end := strings.Index(s[start+2:], "}}")
		if end < 0 {
			break
		}
		stop := start + 2 + end + 2
		b.WriteString(html.EscapeString(s[:start]))
		b.WriteString(s[start:stop])
		s = s[stop:]
	}
	b.WriteString(html.EscapeString(s))
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
