package analytics

import (
	"sort"

	"github.com/convolens/convolens/internal/domain/entities"
)

// SpeakerGroup is one speaker's slice of the processed word stream
type SpeakerGroup struct {
	Speaker    string               `json:"speaker"`
	Words      []entities.DataPoint `json:"words"`
	TotalWords int                  `json:"total_words"`
	TotalTurns int                  `json:"total_turns"`
}

// TurnGroup is one turn's slice of the processed word stream
type TurnGroup struct {
	TurnNumber int                  `json:"turn_number"`
	Speaker    string               `json:"speaker"`
	Words      []entities.DataPoint `json:"words"`
}

// GroupBySpeaker groups the processed stream per enabled speaker, in
// first-appearance order, then applies the requested sort mode
func GroupBySpeaker(words []entities.DataPoint, opts Options) []SpeakerGroup {
	index := map[string]int{}
	var groups []SpeakerGroup
	turnSeen := map[string]int{}

	for _, dp := range words {
		if !opts.speakerEnabled(dp.Speaker) {
			continue
		}
		gi, ok := index[dp.Speaker]
		if !ok {
			gi = len(groups)
			index[dp.Speaker] = gi
			groups = append(groups, SpeakerGroup{Speaker: dp.Speaker})
			turnSeen[dp.Speaker] = -1
		}
		g := &groups[gi]
		g.Words = append(g.Words, dp)
		g.TotalWords++
		if turnSeen[dp.Speaker] != dp.TurnNumber {
			turnSeen[dp.Speaker] = dp.TurnNumber
			g.TotalTurns++
		}
	}

	switch opts.SortSpeakersBy {
	case SortSpeakersByWords:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalWords > groups[j].TotalWords })
	case SortSpeakersByTurns:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].TotalTurns > groups[j].TotalTurns })
	case SortSpeakersByName:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Speaker < groups[j].Speaker })
	}
	return groups
}

// GroupByTurn groups the processed stream per turn number, in stream order
func GroupByTurn(words []entities.DataPoint, opts Options) []TurnGroup {
	var groups []TurnGroup
	for _, dp := range words {
		if !opts.speakerEnabled(dp.Speaker) {
			continue
		}
		if n := len(groups); n == 0 || groups[n-1].TurnNumber != dp.TurnNumber {
			groups = append(groups, TurnGroup{TurnNumber: dp.TurnNumber, Speaker: dp.Speaker})
		}
		g := &groups[len(groups)-1]
		g.Words = append(g.Words, dp)
	}
	return groups
}
