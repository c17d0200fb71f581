package ingest

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/convolens/convolens/internal/domain/entities"
)

// maxTurnRangeSpan is the largest turn range a single annotation row may
// expand to; larger ranges are almost certainly data errors and are dropped
const maxTurnRangeSpan = 10000

// TurnCode maps a code name to the turn numbers it annotates
type TurnCode struct {
	Name  string
	Turns []int
}

// TimeCode maps a code name to a time interval in seconds
type TimeCode struct {
	Name  string
	Start float64
	End   float64
}

// CodeSet is the normalized result of parsing an annotation file
type CodeSet struct {
	TurnCodes []TurnCode
	TimeCodes []TimeCode
}

// Names returns every distinct code name in first-seen order
func (cs CodeSet) Names() []string {
	seen := map[string]bool{}
	var names []string
	for _, tc := range cs.TurnCodes {
		if !seen[tc.Name] {
			seen[tc.Name] = true
			names = append(names, tc.Name)
		}
	}
	for _, tc := range cs.TimeCodes {
		if !seen[tc.Name] {
			seen[tc.Name] = true
			names = append(names, tc.Name)
		}
	}
	return names
}

// CodeParser parses annotation/code files and applies them to word streams
type CodeParser struct {
	logger *zap.Logger
}

// NewCodeParser creates a new CodeParser
func NewCodeParser(logger *zap.Logger) *CodeParser {
	return &CodeParser{logger: logger}
}

// IsAnnotationTable reports whether a tabular file is an annotation file
// rather than a transcript: it must lack both a speaker and a content
// column, and either carry a recognized column signature or at least one
// code-related column name.
func IsAnnotationTable(t Table) bool {
	if t.HasColumn("speaker") || t.HasColumn("content") {
		return false
	}
	if t.HasColumn("turn") && t.HasColumn("code") {
		return true
	}
	if t.HasColumn("turn_start") && t.HasColumn("turn_end") && t.HasColumn("code") {
		return true
	}
	if t.HasColumn("start") && t.HasColumn("end") {
		return true
	}
	// Incomplete but code-ish files are still claimed here; Parse raises the
	// hard error if no full signature is present
	for _, col := range []string{"code", "turn", "turn_start", "turn_end"} {
		if t.HasColumn(col) {
			return true
		}
	}
	return false
}

// Parse converts an annotation table into a normalized CodeSet. Bad rows
// are skipped; a table with no recognized column signature is a hard error
// (detection already claimed the file, so there is no safe fallback).
func (p *CodeParser) Parse(t Table, fileName string) (CodeSet, error) {
	switch {
	case t.HasColumn("code") && t.HasColumn("turn"):
		return p.parseTurnBased(t), nil
	case t.HasColumn("code") && t.HasColumn("turn_start") && t.HasColumn("turn_end"):
		return p.parseTurnRanges(t), nil
	case t.HasColumn("start") && t.HasColumn("end"):
		return p.parseTimeBased(t, fileName), nil
	}
	return CodeSet{}, entities.ErrUnrecognizedCodeFormat
}

func (p *CodeParser) parseTurnBased(t Table) CodeSet {
	byCode := map[string]map[int]bool{}
	var order []string
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["code"])
		turn, err := strconv.Atoi(strings.TrimSpace(row["turn"]))
		if name == "" || err != nil || turn <= 0 {
			continue
		}
		if byCode[name] == nil {
			byCode[name] = map[int]bool{}
			order = append(order, name)
		}
		byCode[name][turn] = true
	}
	return CodeSet{TurnCodes: collectTurnCodes(byCode, order)}
}

func (p *CodeParser) parseTurnRanges(t Table) CodeSet {
	byCode := map[string]map[int]bool{}
	var order []string
	for _, row := range t.Rows {
		name := strings.TrimSpace(row["code"])
		start, errS := strconv.Atoi(strings.TrimSpace(row["turn_start"]))
		end, errE := strconv.Atoi(strings.TrimSpace(row["turn_end"]))
		if name == "" || errS != nil || errE != nil {
			continue
		}
		if start <= 0 || end < start {
			continue
		}
		if end-start+1 > maxTurnRangeSpan {
			if p.logger != nil {
				p.logger.Warn("skipping oversized turn range",
					zap.String("code", name),
					zap.Int("turn_start", start),
					zap.Int("turn_end", end),
				)
			}
			continue
		}
		if byCode[name] == nil {
			byCode[name] = map[int]bool{}
			order = append(order, name)
		}
		for turn := start; turn <= end; turn++ {
			byCode[name][turn] = true
		}
	}
	return CodeSet{TurnCodes: collectTurnCodes(byCode, order)}
}

func (p *CodeParser) parseTimeBased(t Table, fileName string) CodeSet {
	hasCodeColumn := t.HasColumn("code")
	fallback := syntheticCodeName(fileName)
	var out []TimeCode
	for _, row := range t.Rows {
		start, okS := ParseTimestamp(row["start"])
		end, okE := ParseTimestamp(row["end"])
		if !okS || !okE {
			continue
		}
		name := fallback
		if hasCodeColumn {
			name = strings.TrimSpace(row["code"])
			if name == "" {
				name = fallback
			}
		}
		out = append(out, TimeCode{Name: name, Start: start, End: end})
	}
	return CodeSet{TimeCodes: out}
}

func collectTurnCodes(byCode map[string]map[int]bool, order []string) []TurnCode {
	var out []TurnCode
	for _, name := range order {
		turns := make([]int, 0, len(byCode[name]))
		for turn := range byCode[name] {
			turns = append(turns, turn)
		}
		sort.Ints(turns)
		out = append(out, TurnCode{Name: name, Turns: turns})
	}
	return out
}

// syntheticCodeName derives a code name from the annotation file name:
// extension stripped, underscores and dashes replaced with spaces
func syntheticCodeName(fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.TrimSpace(base)
	if base == "" {
		return "code"
	}
	return base
}

// Apply overlays a CodeSet onto the word stream in place. Turn codes use a
// reverse turn index; time codes match on strict open-interval overlap, so
// intervals that merely touch at a boundary do not count.
func (p *CodeParser) Apply(words []entities.DataPoint, set CodeSet) {
	turnIndex := map[int][]string{}
	for _, tc := range set.TurnCodes {
		for _, turn := range tc.Turns {
			turnIndex[turn] = append(turnIndex[turn], tc.Name)
		}
	}

	for i := range words {
		dp := &words[i]
		for _, name := range turnIndex[dp.TurnNumber] {
			dp.AddCode(name)
		}
		for _, tc := range set.TimeCodes {
			if dp.StartTime < tc.End && dp.EndTime > tc.Start {
				dp.AddCode(tc.Name)
			}
		}
	}
}

// DiscoverCodes appends registry entries for any code names not yet
// registered, assigning palette colors that skip colors already in use
func DiscoverCodes(existing []entities.CodeEntry, set CodeSet) []entities.CodeEntry {
	known := map[string]bool{}
	for _, e := range existing {
		known[e.Name] = true
	}
	out := existing
	for _, name := range set.Names() {
		if known[name] {
			continue
		}
		out = append(out, entities.CodeEntry{
			Name:    name,
			Color:   entities.NextPaletteColor(out),
			Enabled: true,
		})
		known[name] = true
	}
	return out
}

// ClearCodes resets every DataPoint's code set. This is the one sanctioned
// in-place mutation of the canonical array.
func ClearCodes(words []entities.DataPoint) {
	for i := range words {
		words[i].Codes = nil
	}
}
