package analytics

import (
	"sort"
	"strings"

	"github.com/convolens/convolens/internal/domain/entities"
)

// JourneyOccurrence is one sighting of the searched word
type JourneyOccurrence struct {
	entities.DataPoint
	IsFirst           bool `json:"is_first"`
	IsFirstForSpeaker bool `json:"is_first_for_speaker"`
}

// Journey is every occurrence of a word across the visible transcript,
// ordered by time
type Journey struct {
	Word        string              `json:"word"`
	Occurrences []JourneyOccurrence `json:"occurrences"`
}

// WordJourney collects every occurrence of the search term (substring match
// on the normalized word) by enabled speakers, sorted ascending by start
// time. The earliest occurrence overall and the earliest per speaker are
// flagged.
func WordJourney(words []entities.DataPoint, term string, opts Options) Journey {
	journey := Journey{Word: term, Occurrences: []JourneyOccurrence{}}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return journey
	}

	for _, dp := range words {
		if !opts.speakerEnabled(dp.Speaker) {
			continue
		}
		if !strings.Contains(dp.Word, needle) {
			continue
		}
		journey.Occurrences = append(journey.Occurrences, JourneyOccurrence{DataPoint: dp})
	}

	sort.SliceStable(journey.Occurrences, func(i, j int) bool {
		return journey.Occurrences[i].StartTime < journey.Occurrences[j].StartTime
	})

	speakerSeen := map[string]bool{}
	for i := range journey.Occurrences {
		occ := &journey.Occurrences[i]
		if i == 0 {
			occ.IsFirst = true
		}
		if !speakerSeen[occ.Speaker] {
			speakerSeen[occ.Speaker] = true
			occ.IsFirstForSpeaker = true
		}
	}
	return journey
}
