package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/convolens/convolens/internal/domain/entities"
)

// Line format labels, in cascade priority order
const (
	FormatSpeakerTabTime = "speaker-tab-time"
	FormatTimeTabSpeaker = "time-tab-speaker"
	FormatBracketSpeaker = "bracket-speaker"
	FormatBracketPlain   = "bracket-plain"
	FormatClock          = "clock"
	FormatColon          = "colon"
	FormatTab            = "tab"
	FormatPlain          = "plain"
	FormatMixed          = "mixed"
)

// DefaultSpeaker is assigned to turns whose source line carried no speaker
const DefaultSpeaker = "Speaker"

// ParseResult is the output of parsing raw transcript text
type ParseResult struct {
	Turns             []entities.ParsedTurn
	DominantFormat    string
	HasTimestamps     bool
	Speakers          []string
	ContinuationLines int
	TotalLines        int
}

// matchedLine is one line successfully claimed by a format rule
type matchedLine struct {
	speaker   string
	content   string
	start     *float64
	wallClock bool
}

// formatRule is one entry of the ordered cascade: a line pattern plus an
// extractor that may still reject the candidate (implausible speaker,
// unparsable time)
type formatRule struct {
	label   string
	re      *regexp.Regexp
	extract func(m []string) (matchedLine, bool)
}

var (
	threeColRe     = regexp.MustCompile(`^([^\t]+)\t([^\t]+)\t(.*)$`)
	bracketRe      = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)$`)
	clockRe        = regexp.MustCompile(`^\[(\d{1,2}):(\d{2})(?::(\d{2}))?\s*([AaPp])\.?[Mm]\.?\]\s*([^:]+):\s*(.*)$`)
	colonRe        = regexp.MustCompile(`^([^:]+):\s*(.*)$`)
	twoColRe       = regexp.MustCompile(`^([^\t]+)\t(.*)$`)
	numericOnlyRe  = regexp.MustCompile(`^[0-9.,:]+$`)
	embeddedPairRe = regexp.MustCompile(`^([^:\t]+)[:\t]\s*(.*)$`)
)

// lineRules is the cascade in fixed priority order
var lineRules = []formatRule{
	{
		label: FormatSpeakerTabTime,
		re:    threeColRe,
		extract: func(m []string) (matchedLine, bool) {
			ts, ok := ParseTimestamp(m[2])
			if !ok || !PlausibleSpeaker(m[1]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(m[1]), content: strings.TrimSpace(m[3]), start: &ts}, true
		},
	},
	{
		label: FormatTimeTabSpeaker,
		re:    threeColRe,
		extract: func(m []string) (matchedLine, bool) {
			ts, ok := ParseTimestamp(m[1])
			if !ok || !PlausibleSpeaker(m[2]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(m[2]), content: strings.TrimSpace(m[3]), start: &ts}, true
		},
	},
	{
		label: FormatBracketSpeaker,
		re:    bracketRe,
		extract: func(m []string) (matchedLine, bool) {
			ts, ok := ParseTimestamp(m[1])
			if !ok {
				return matchedLine{}, false
			}
			pair := embeddedPairRe.FindStringSubmatch(m[2])
			if pair == nil || !PlausibleSpeaker(pair[1]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(pair[1]), content: strings.TrimSpace(pair[2]), start: &ts}, true
		},
	},
	{
		label: FormatBracketPlain,
		re:    bracketRe,
		extract: func(m []string) (matchedLine, bool) {
			ts, ok := ParseTimestamp(m[1])
			if !ok {
				return matchedLine{}, false
			}
			// Only matches when the remainder does not itself look like an
			// embedded Speaker:/Speaker<TAB> pair, so the speaker rule wins
			if pair := embeddedPairRe.FindStringSubmatch(m[2]); pair != nil && PlausibleSpeaker(pair[1]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: "", content: strings.TrimSpace(m[2]), start: &ts}, true
		},
	},
	{
		label: FormatClock,
		re:    clockRe,
		extract: func(m []string) (matchedLine, bool) {
			if !PlausibleSpeaker(m[5]) {
				return matchedLine{}, false
			}
			ts, ok := clockToSeconds(m[1], m[2], m[3], m[4])
			if !ok {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(m[5]), content: strings.TrimSpace(m[6]), start: &ts, wallClock: true}, true
		},
	},
	{
		label: FormatColon,
		re:    colonRe,
		extract: func(m []string) (matchedLine, bool) {
			if !PlausibleSpeaker(m[1]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(m[1]), content: strings.TrimSpace(m[2])}, true
		},
	},
	{
		label: FormatTab,
		re:    twoColRe,
		extract: func(m []string) (matchedLine, bool) {
			if !PlausibleSpeaker(m[1]) {
				return matchedLine{}, false
			}
			return matchedLine{speaker: normalizeSpeaker(m[1]), content: strings.TrimSpace(m[2])}, true
		},
	},
}

// PlausibleSpeaker reports whether a candidate speaker token looks like a
// real speaker name. It rejects empty or overlong tokens, bracketed text,
// URL-ish content, pure numbers and tokens with more than 3 internal
// whitespace runs.
func PlausibleSpeaker(candidate string) bool {
	s := strings.TrimSpace(candidate)
	if s == "" || len([]rune(s)) > 40 {
		return false
	}
	switch s[0] {
	case '[', '(', '{':
		return false
	}
	if strings.Contains(s, "//") || strings.Contains(s, "@") || strings.Contains(s, "www.") {
		return false
	}
	if numericOnlyRe.MatchString(s) {
		return false
	}
	if len(strings.Fields(s)) > 4 {
		return false
	}
	return true
}

func normalizeSpeaker(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// clockToSeconds converts a wall-clock reading to seconds since midnight
func clockToSeconds(hourStr, minStr, secStr, meridiem string) (float64, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute, err := strconv.Atoi(minStr)
	if err != nil || minute > 59 {
		return 0, false
	}
	second := 0
	if secStr != "" {
		second, err = strconv.Atoi(secStr)
		if err != nil || second > 59 {
			return 0, false
		}
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "p" || meridiem == "P" {
		hour += 12
	}
	return float64(hour*3600 + minute*60 + second), true
}

// ParseTranscriptText converts raw pasted text into an ordered turn list.
// Each non-blank line is tried against the format cascade; lines matching no
// rule become continuations of the previous turn. forcedFormat restricts the
// cascade to a single rule label ("" tries all).
func ParseTranscriptText(text, forcedFormat string) ParseResult {
	result := ParseResult{}
	tally := map[string]int{}
	speakerSeen := map[string]bool{}
	wallClockIdx := []int{}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.TotalLines++

		ml, label, ok := matchLine(line, forcedFormat)
		if !ok {
			// Continuation: join onto the previous turn, or open a default
			// turn when the transcript starts mid-paragraph
			result.ContinuationLines++
			tally[FormatPlain]++
			trimmed := strings.TrimSpace(line)
			if n := len(result.Turns); n > 0 {
				result.Turns[n-1].Content += " " + trimmed
			} else {
				result.Turns = append(result.Turns, entities.ParsedTurn{Speaker: DefaultSpeaker, Content: trimmed})
				speakerSeen[DefaultSpeaker] = true
				result.Speakers = append(result.Speakers, DefaultSpeaker)
			}
			continue
		}

		tally[label]++
		speaker := ml.speaker
		if speaker == "" {
			speaker = DefaultSpeaker
		}
		if !speakerSeen[speaker] {
			speakerSeen[speaker] = true
			result.Speakers = append(result.Speakers, speaker)
		}
		turn := entities.ParsedTurn{Speaker: speaker, Content: ml.content, StartTime: ml.start}
		if ml.start != nil {
			result.HasTimestamps = true
		}
		if ml.wallClock {
			wallClockIdx = append(wallClockIdx, len(result.Turns))
		}
		result.Turns = append(result.Turns, turn)
	}

	rebaseWallClock(result.Turns, wallClockIdx)
	result.DominantFormat = dominantFormat(tally)
	return result
}

func matchLine(line, forcedFormat string) (matchedLine, string, bool) {
	for _, rule := range lineRules {
		if forcedFormat != "" && rule.label != forcedFormat {
			continue
		}
		m := rule.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if ml, ok := rule.extract(m); ok {
			return ml, rule.label, true
		}
	}
	return matchedLine{}, "", false
}

// rebaseWallClock makes wall-clock (seconds-since-midnight) timestamps
// relative to the first one, adding 24h whenever a timestamp steps strictly
// backwards, which means the log crossed midnight.
func rebaseWallClock(turns []entities.ParsedTurn, indices []int) {
	if len(indices) == 0 {
		return
	}
	base := *turns[indices[0]].StartTime
	offset := 0.0
	prev := base
	for _, idx := range indices {
		raw := *turns[idx].StartTime
		if raw < prev {
			offset += 24 * 3600
		}
		prev = raw
		rel := raw + offset - base
		turns[idx].StartTime = &rel
	}
}

// dominantFormat reports the most frequent non-plain label, or "mixed" when
// two or more distinct non-plain labels occurred
func dominantFormat(tally map[string]int) string {
	best, bestCount, distinct := FormatPlain, 0, 0
	for label, count := range tally {
		if label == FormatPlain || count == 0 {
			continue
		}
		distinct++
		if count > bestCount {
			best, bestCount = label, count
		}
	}
	if distinct >= 2 {
		return FormatMixed
	}
	return best
}

// MergeSameSpeakerTurns folds consecutive turns by the same speaker into
// one, keeping the first turn's start time and concatenating content. The
// operation is idempotent.
func MergeSameSpeakerTurns(turns []entities.ParsedTurn) []entities.ParsedTurn {
	var out []entities.ParsedTurn
	for _, t := range turns {
		if n := len(out); n > 0 && out[n-1].Speaker == t.Speaker {
			out[n-1].Content += " " + t.Content
			if t.EndTime != nil {
				out[n-1].EndTime = t.EndTime
			}
			continue
		}
		out = append(out, t)
	}
	return out
}
