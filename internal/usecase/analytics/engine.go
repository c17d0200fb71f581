package analytics

import (
	"github.com/convolens/convolens/internal/domain/entities"
)

// ProcessedWords derives the analyzable word stream from the canonical
// array: the reveal-cursor prefix, optionally filtered to the active time
// window and stripped of stop words, with repeat counts annotated. Every
// element is a fresh copy; the input slice is never mutated.
//
// The result is identical whether a prefix is recomputed from scratch or
// grown one element at a time — downstream size/emphasis mapping depends
// on that.
func ProcessedWords(words []entities.DataPoint, opts Options) []entities.DataPoint {
	end := opts.EndIndex
	if end < 0 || end > len(words) {
		end = len(words)
	}

	out := make([]entities.DataPoint, 0, end)
	for _, dp := range words[:end] {
		if opts.Window != nil && (dp.EndTime < opts.Window.Left || dp.StartTime > opts.Window.Right) {
			continue
		}
		if opts.FilterStopWords && IsStopWord(dp.Word) {
			continue
		}
		out = append(out, dp.WithCount(1))
	}

	if opts.LastWordMode {
		annotateLastWord(out, opts.EchoMode)
	} else {
		annotateFirstWord(out)
	}
	return out
}

type wordKey struct {
	speaker string
	word    string
}

// annotateFirstWord keeps the running repeat count on the first occurrence
// of each (speaker, word) key; later occurrences stay at 1
func annotateFirstWord(words []entities.DataPoint) {
	firstIdx := map[wordKey]int{}
	for i := range words {
		key := wordKey{words[i].Speaker, words[i].Word}
		if fi, seen := firstIdx[key]; seen {
			words[fi].Count++
			continue
		}
		firstIdx[key] = i
	}
}

// annotateLastWord moves the running count to each new occurrence. Unless
// echo mode is on, the previous occurrence drops back to 1 so only the most
// recent instance shows the running total.
func annotateLastWord(words []entities.DataPoint, echo bool) {
	type lastSeen struct {
		idx   int
		count int
	}
	last := map[wordKey]lastSeen{}
	for i := range words {
		key := wordKey{words[i].Speaker, words[i].Word}
		if prev, seen := last[key]; seen {
			words[i].Count = prev.count + 1
			if !echo {
				words[prev.idx].Count = 1
			}
		}
		last[key] = lastSeen{idx: i, count: words[i].Count}
	}
}
