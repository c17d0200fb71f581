package ingest

import (
	"strings"
	"unicode"

	"github.com/convolens/convolens/internal/domain/entities"
)

// estimatedWordSeconds is the per-word reading-rate fallback used when a
// turn has no usable end time (roughly 150 words per minute)
const estimatedWordSeconds = 0.4

// BuildDataPoints consumes ParsedTurns and produces the canonical per-word
// array. Turn numbers are 1-based and monotonic. When the source lacks
// per-word timing, word times are interpolated linearly across the turn
// span; when a turn has no end time the next turn's start, then a
// reading-rate estimate, fills in.
func BuildDataPoints(turns []entities.ParsedTurn) []entities.DataPoint {
	var out []entities.DataPoint
	cursor := 0.0

	for i, turn := range turns {
		words := splitWords(turn.Content)
		if len(words) == 0 {
			continue
		}

		start := cursor
		if turn.StartTime != nil {
			start = *turn.StartTime
		}

		end := start + float64(len(words))*estimatedWordSeconds
		if turn.EndTime != nil && *turn.EndTime >= start {
			end = *turn.EndTime
		} else if i+1 < len(turns) && turns[i+1].StartTime != nil && *turns[i+1].StartTime >= start {
			end = *turns[i+1].StartTime
		}

		span := end - start
		n := float64(len(words))
		for wi, w := range words {
			out = append(out, entities.DataPoint{
				Speaker:     turn.Speaker,
				TurnNumber:  i + 1,
				Word:        w.normalized,
				DisplayWord: w.display,
				StartTime:   start + span*float64(wi)/n,
				EndTime:     start + span*float64(wi+1)/n,
				Count:       1,
			})
		}
		cursor = end
	}
	return out
}

type splitWord struct {
	display    string
	normalized string
}

// splitWords breaks turn content into tokens, keeping the original
// punctuated form alongside the normalized one. Tokens that normalize to
// nothing (pure punctuation) are dropped.
func splitWords(content string) []splitWord {
	var out []splitWord
	for _, tok := range strings.Fields(content) {
		norm := NormalizeWord(tok)
		if norm == "" {
			continue
		}
		out = append(out, splitWord{display: tok, normalized: norm})
	}
	return out
}

// NormalizeWord lowercases a token and strips surrounding punctuation,
// keeping internal apostrophes and hyphens ("don't", "well-known")
func NormalizeWord(tok string) string {
	lower := strings.ToLower(tok)
	return strings.TrimFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
