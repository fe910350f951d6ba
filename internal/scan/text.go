package scan

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
)

// TextScanner handles plain text files: every blank-line separated
// paragraph is one message.
type TextScanner struct{}

func (s *TextScanner) Scan(r io.Reader, filename string) ([]catalog.Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var msgs []catalog.Message
	var current strings.Builder
	start, lineNo := 0, 0

	flush := func() {
		if current.Len() > 0 {
			msgs = append(msgs, catalog.Message{
				Source: current.String(),
				File:   filename,
				Line:   start,
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		} else {
			start = lineNo
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}
