package entities

// DataPoint is the atomic unit of a normalized transcript: one spoken word.
// StartTime/EndTime are seconds from session start and may be estimated when
// the source has no per-word timing.
type DataPoint struct {
	Speaker     string   `json:"speaker"`
	TurnNumber  int      `json:"turn_number"`
	Word        string   `json:"word"`
	DisplayWord string   `json:"display_word"`
	StartTime   float64  `json:"start_time"`
	EndTime     float64  `json:"end_time"`
	Count       int      `json:"count"`
	Codes       []string `json:"codes,omitempty"`
}

// WithCount returns a copy of the DataPoint with Count replaced. Analytics
// passes annotate copies, never the shared canonical array.
func (dp DataPoint) WithCount(count int) DataPoint {
	out := dp
	out.Count = count
	return out
}

// HasCode reports whether the given code name is attached to this word
func (dp DataPoint) HasCode(name string) bool {
	for _, c := range dp.Codes {
		if c == name {
			return true
		}
	}
	return false
}

// AddCode attaches a code name, keeping the set deduplicated
func (dp *DataPoint) AddCode(name string) {
	if dp.HasCode(name) {
		return
	}
	dp.Codes = append(dp.Codes, name)
}

// ParsedTurn is the intermediate parse result produced by the line matcher,
// before word splitting. Times are nil when the source line had no timestamp.
type ParsedTurn struct {
	Speaker   string
	Content   string
	StartTime *float64
	EndTime   *float64
}

// Turn is a derived grouping of all DataPoints sharing a turn number
type Turn struct {
	Number    int     `json:"number"`
	Speaker   string  `json:"speaker"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Content   string  `json:"content"`
	WordCount int     `json:"word_count"`
}

// BuildTurns groups a word stream into turns. Words are expected in source
// order, so turn numbers are non-decreasing; a turn's start/end are the
// min/max of its members.
func BuildTurns(words []DataPoint) []Turn {
	var turns []Turn
	for _, dp := range words {
		if len(turns) == 0 || turns[len(turns)-1].Number != dp.TurnNumber {
			turns = append(turns, Turn{
				Number:    dp.TurnNumber,
				Speaker:   dp.Speaker,
				StartTime: dp.StartTime,
				EndTime:   dp.EndTime,
				Content:   dp.DisplayWord,
				WordCount: 1,
			})
			continue
		}
		t := &turns[len(turns)-1]
		if dp.StartTime < t.StartTime {
			t.StartTime = dp.StartTime
		}
		if dp.EndTime > t.EndTime {
			t.EndTime = dp.EndTime
		}
		t.Content += " " + dp.DisplayWord
		t.WordCount++
	}
	return turns
}
