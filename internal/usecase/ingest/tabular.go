package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/convolens/convolens/internal/domain/entities"
)

// Table is a parsed tabular file: normalized headers plus one string map
// per row
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// HasColumn reports whether the table carries the given normalized header
func (t Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// ReadCSV parses CSV text into a Table. Headers are lowercased and trimmed
// so column matching is case-insensitive. Short rows are padded with empty
// values rather than rejected.
func ReadCSV(text string) (Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("csv has no rows")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	table := Table{Headers: headers}
	for _, rec := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ParseTabularTranscript converts transcript-shaped rows (speaker, content,
// optional start/end) into ParsedTurns. Rows without content are skipped;
// unparsable times degrade to nil rather than failing the row.
func ParseTabularTranscript(t Table) ([]entities.ParsedTurn, error) {
	if !t.HasColumn("content") {
		return nil, fmt.Errorf("tabular transcript needs a content column")
	}

	var turns []entities.ParsedTurn
	for _, row := range t.Rows {
		content := strings.TrimSpace(row["content"])
		if content == "" {
			continue
		}
		speaker := normalizeSpeaker(row["speaker"])
		if speaker == "" {
			speaker = DefaultSpeaker
		}
		turn := entities.ParsedTurn{Speaker: speaker, Content: content}
		if ts, ok := ParseTimestamp(row["start"]); ok {
			turn.StartTime = &ts
		}
		if ts, ok := ParseTimestamp(row["end"]); ok {
			turn.EndTime = &ts
		}
		turns = append(turns, turn)
	}
	return turns, nil
}
