// Package jsx parses Trans-style markup strings (text, <tag>...</tag>
// elements and {{expr}} interpolations) into a node forest and serializes
// that forest into i18next numbered-placeholder text.
package jsx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	exprOpen  = "{{"
	exprClose = "}}"
)

type scanState int

const (
	stateText scanState = iota
	stateExpression
	stateElement
)

// scanner holds the cursor over one nesting level. Element bodies are
// handled by a fresh scanner over the body substring.
type scanner struct {
	src   string
	pos   int
	tag   string          // tag name of the opener at pos, in stateElement
	text  strings.Builder // pending raw text, decoded on flush
	nodes []*Node
}

// ParseJSX parses input into an ordered forest of nodes. It never fails:
// an opener without a matching closer turns the rest of the input into
// literal text. Empty input yields a nil slice.
func ParseJSX(input string) []*Node {
	s := &scanner{src: input}
	return s.run()
}

func (s *scanner) run() []*Node {
	state := stateText
	for s.pos < len(s.src) {
		switch state {
		case stateText:
			state = s.scanText()
		case stateExpression:
			state = s.scanExpression()
		case stateElement:
			state = s.scanElement()
		}
	}
	s.flush()
	return s.nodes
}

// scanText accumulates literal text up to the next opener.
func (s *scanner) scanText() scanState {
	for i := s.pos; i < len(s.src); i++ {
		switch s.src[i] {
		case '{':
			if strings.HasPrefix(s.src[i:], exprOpen) {
				s.text.WriteString(s.src[s.pos:i])
				s.pos = i
				return stateExpression
			}
		case '<':
			if name, ok := startTag(s.src[i:]); ok {
				s.text.WriteString(s.src[s.pos:i])
				s.pos = i
				s.tag = name
				return stateElement
			}
		}
	}
	s.literalRest()
	return stateText
}

func (s *scanner) scanExpression() scanState {
	end := strings.Index(s.src[s.pos+len(exprOpen):], exprClose)
	if end < 0 {
		s.literalRest()
		return stateText
	}
	stop := s.pos + len(exprOpen) + end + len(exprClose)
	s.flush()
	s.nodes = append(s.nodes, &Node{NodeName: ExpressionNode, Value: s.src[s.pos:stop]})
	s.pos = stop
	return stateText
}

func (s *scanner) scanElement() scanState {
	open := "<" + s.tag + ">"
	closing := "</" + s.tag + ">"
	bodyStart := s.pos + len(open)
	bodyEnd, ok := matchClose(s.src, bodyStart, open, closing)
	if !ok {
		s.literalRest()
		return stateText
	}
	s.flush()
	children := ParseJSX(s.src[bodyStart:bodyEnd])
	if children == nil {
		children = []*Node{}
	}
	s.nodes = append(s.nodes, &Node{NodeName: s.tag, ChildNodes: children})
	s.pos = bodyEnd + len(closing)
	return stateText
}

// literalRest moves everything from the cursor into the pending text run.
func (s *scanner) literalRest() {
	s.text.WriteString(s.src[s.pos:])
	s.pos = len(s.src)
}

func (s *scanner) flush() {
	if s.text.Len() == 0 {
		return
	}
	s.nodes = append(s.nodes, &Node{NodeName: TextNode, Value: DecodeEntities(s.text.String())})
	s.text.Reset()
}

// matchClose returns the offset of the closer that balances the opener
// preceding from, counting nested openers of the same name. Complete
// {{...}} spans are opaque, as they are to the scanner itself.
func matchClose(src string, from int, open, closing string) (int, bool) {
	depth := 1
	for i := from; i < len(src); {
		rest := src[i:]
		switch {
		case strings.HasPrefix(rest, exprOpen):
			if end := strings.Index(rest[len(exprOpen):], exprClose); end >= 0 {
				i += len(exprOpen) + end + len(exprClose)
				continue
			}
			i += len(exprOpen)
		case strings.HasPrefix(rest, closing):
			depth--
			if depth == 0 {
				return i, true
			}
			i += len(closing)
		case strings.HasPrefix(rest, open):
			depth++
			i += len(open)
		default:
			i++
		}
	}
	return 0, false
}

// startTag reports whether s begins with "<name>" and returns the name.
func startTag(s string) (string, bool) {
	for i := 1; i < len(s); {
		if s[i] == '>' {
			if i == 1 {
				return "", false
			}
			return s[1:i], true
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isNameRune(r) {
			return "", false
		}
		i += size
	}
	return "", false
}

func isNameRune(r rune) bool {
	switch r {
	case '_', '-', '.', ':':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
