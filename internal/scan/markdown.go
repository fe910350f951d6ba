package scan

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownScanner handles Markdown files using goldmark. Headings,
// paragraphs and list text become messages; their raw source is kept so
// inline tags and {{expressions}} survive. Code blocks are skipped.
type MarkdownScanner struct{}

func (s *MarkdownScanner) Scan(r io.Reader, filename string) ([]catalog.Message, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	type stackEntry struct {
		title string
		level int
	}
	var stack []stackEntry
	var msgs []catalog.Message

	section := func() []string {
		if len(stack) == 0 {
			return nil
		}
		out := make([]string, len(stack))
		for i, e := range stack {
			out[i] = e.title
		}
		return out
	}

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil

		case *ast.Heading:
			raw, line := blockSource(node, src)
			if raw == "" {
				return ast.WalkSkipChildren, nil
			}
			// Pop stack until we find a parent with lower level.
			for len(stack) > 0 && stack[len(stack)-1].level >= node.Level {
				stack = stack[:len(stack)-1]
			}
			msgs = append(msgs, catalog.Message{Source: raw, File: filename, Line: line, Section: section()})
			stack = append(stack, stackEntry{title: raw, level: node.Level})
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.TextBlock:
			raw, line := blockSource(node, src)
			if raw != "" {
				msgs = append(msgs, catalog.Message{Source: raw, File: filename, Line: line, Section: section()})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return msgs, nil
}

// blockSource joins the raw source lines of a block with single spaces and
// returns the 1-based line number of its first line.
func blockSource(n ast.Node, src []byte) (string, int) {
	lines := n.Lines()
	if lines.Len() == 0 {
		return "", 0
	}
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if l := strings.TrimSpace(string(seg.Value(src))); l != "" {
			parts = append(parts, l)
		}
	}
	first := lines.At(0).Start
	return strings.Join(parts, " "), bytes.Count(src[:first], []byte("\n")) + 1
}
