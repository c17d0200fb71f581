package analytics

import (
	"strings"

	"github.com/convolens/convolens/internal/domain/entities"
)

// interrogativeWords marks a turn as a question when its first word is one
// of these, even without a question mark
var interrogativeWords = map[string]bool{
	"who": true, "what": true, "when": true, "where": true, "why": true,
	"how": true, "which": true, "whose": true, "whom": true,
	"do": true, "does": true, "did": true, "is": true, "are": true,
	"was": true, "were": true, "can": true, "could": true, "would": true,
	"will": true, "should": true, "shall": true, "am": true, "have": true,
	"has": true,
}

// isQuestionTurn is the shallow question heuristic: a question mark
// anywhere, or an interrogative first word
func isQuestionTurn(t entities.Turn) bool {
	if strings.Contains(t.Content, "?") {
		return true
	}
	fields := strings.Fields(t.Content)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimRight(fields[0], ".,!?;:"))
	return interrogativeWords[first]
}

// Fingerprint is a per-speaker vector of behavioral metrics, raw and
// normalized to [0,1]
type Fingerprint struct {
	Speaker           string  `json:"speaker"`
	TotalWords        int     `json:"total_words"`
	TotalTurns        int     `json:"total_turns"`
	QuestionTurns     int     `json:"question_turns"`
	InterruptionTurns int     `json:"interruption_turns"`
	ConsecutiveTurns  int     `json:"consecutive_turns"`
	AvgTurnLength     float64 `json:"avg_turn_length"`
	QuestionRate      float64 `json:"question_rate"`
	InterruptionRate  float64 `json:"interruption_rate"`
	ConsecutiveRate   float64 `json:"consecutive_rate"`

	Normalized FingerprintScales `json:"normalized"`
}

// FingerprintScales are the [0,1] values used for shape rendering
type FingerprintScales struct {
	Participation    float64 `json:"participation"`
	AvgTurnLength    float64 `json:"avg_turn_length"`
	QuestionRate     float64 `json:"question_rate"`
	InterruptionRate float64 `json:"interruption_rate"`
	ConsecutiveRate  float64 `json:"consecutive_rate"`
}

// Fingerprints computes per-speaker behavior profiles over the processed
// stream. When ScaleToVisibleData is false, normalization maxima come from
// fullWords (the whole transcript run through the same filters) so shapes
// stay stable while scrubbing; otherwise maxima come from the visible
// selection itself.
func Fingerprints(processed, fullWords []entities.DataPoint, opts Options) []Fingerprint {
	prints := rawFingerprints(processed, opts)
	if len(prints) == 0 {
		return []Fingerprint{}
	}

	reference := prints
	if !opts.ScaleToVisibleData {
		reference = rawFingerprints(fullWords, opts)
	}

	maxWords, maxAvg, maxQ, maxI, maxC := 0.0, 0.0, 0.0, 0.0, 0.0
	for _, fp := range reference {
		maxWords = maxF(maxWords, float64(fp.TotalWords))
		maxAvg = maxF(maxAvg, fp.AvgTurnLength)
		maxQ = maxF(maxQ, fp.QuestionRate)
		maxI = maxF(maxI, fp.InterruptionRate)
		maxC = maxF(maxC, fp.ConsecutiveRate)
	}

	for i := range prints {
		fp := &prints[i]
		fp.Normalized = FingerprintScales{
			Participation:    normalize(float64(fp.TotalWords), maxWords),
			AvgTurnLength:    normalize(fp.AvgTurnLength, maxAvg),
			QuestionRate:     normalize(fp.QuestionRate, maxQ),
			InterruptionRate: normalize(fp.InterruptionRate, maxI),
			ConsecutiveRate:  normalize(fp.ConsecutiveRate, maxC),
		}
	}
	return prints
}

func rawFingerprints(words []entities.DataPoint, opts Options) []Fingerprint {
	turns := entities.BuildTurns(words)
	index := map[string]int{}
	var prints []Fingerprint

	for ti, turn := range turns {
		if !opts.speakerEnabled(turn.Speaker) {
			continue
		}
		fi, ok := index[turn.Speaker]
		if !ok {
			fi = len(prints)
			index[turn.Speaker] = fi
			prints = append(prints, Fingerprint{Speaker: turn.Speaker})
		}
		fp := &prints[fi]
		fp.TotalWords += turn.WordCount
		fp.TotalTurns++

		if isQuestionTurn(turn) {
			fp.QuestionTurns++
		}
		if ti > 0 && turns[ti-1].Speaker == turn.Speaker {
			fp.ConsecutiveTurns++
		}
		if opts.HasWordTimings && interruptsPrevious(turns, ti) {
			fp.InterruptionTurns++
		}
	}

	for i := range prints {
		fp := &prints[i]
		if fp.TotalTurns > 0 {
			n := float64(fp.TotalTurns)
			fp.AvgTurnLength = float64(fp.TotalWords) / n
			fp.QuestionRate = float64(fp.QuestionTurns) / n
			fp.InterruptionRate = float64(fp.InterruptionTurns) / n
			fp.ConsecutiveRate = float64(fp.ConsecutiveTurns) / n
		}
	}
	return prints
}

// interruptsPrevious reports whether turn ti starts before the
// chronologically preceding different-speaker turn ended
func interruptsPrevious(turns []entities.Turn, ti int) bool {
	for pi := ti - 1; pi >= 0; pi-- {
		if turns[pi].Speaker != turns[ti].Speaker {
			return turns[ti].StartTime < turns[pi].EndTime
		}
	}
	return false
}

func normalize(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
