package scan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
)

// CSVScanner handles CSV files of key/value rows. A header row naming
// "key" and "value" (or "source") columns selects them; otherwise the first
// two columns are used and every row is data.
type CSVScanner struct{}

func (s *CSVScanner) Scan(r io.Reader, filename string) ([]catalog.Message, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var msgs []catalog.Message
	keyCol, valCol := 0, 1
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if k, v, ok := headerColumns(record); ok {
				keyCol, valCol = k, v
				continue
			}
		}

		if valCol >= len(record) {
			continue
		}
		key := ""
		if keyCol < len(record) {
			key = strings.TrimSpace(record[keyCol])
		}
		msgs = append(msgs, catalog.Message{
			Key:    key,
			Source: record[valCol],
			File:   filename,
			Line:   line,
		})
	}

	return msgs, nil
}

func headerColumns(record []string) (int, int, bool) {
	keyCol, valCol := -1, -1
	for i, h := range record {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "key":
			keyCol = i
		case "value", "source":
			if valCol < 0 {
				valCol = i
			}
		}
	}
	if keyCol < 0 || valCol < 0 {
		return 0, 0, false
	}
	return keyCol, valCol, true
}
