package analytics

import (
	"github.com/convolens/convolens/internal/domain/entities"
)

// maxSamplePoints caps the sample words kept per edge and per speaker
const maxSamplePoints = 3

// Edge is a directed turn-taking transition between two speakers
type Edge struct {
	Count     int                  `json:"count"`
	WordCount int                  `json:"word_count"`
	Samples   []entities.DataPoint `json:"samples,omitempty"`
}

// SpeakerStats aggregates one speaker's share of the conversation
type SpeakerStats struct {
	WordCount int                  `json:"word_count"`
	TurnCount int                  `json:"turn_count"`
	Samples   []entities.DataPoint `json:"samples,omitempty"`
}

// Network is the turn-taking transition graph
type Network struct {
	Transitions  map[string]map[string]*Edge `json:"transitions"`
	SpeakerStats map[string]*SpeakerStats    `json:"speaker_stats"`
}

// TurnNetwork builds the transition graph in a single forward pass over
// the processed stream: on every turn change the new speaker's turn count
// goes up and, if someone spoke before, the directed edge from them to the
// new speaker records the transition and the destination turn's words.
func TurnNetwork(words []entities.DataPoint, opts Options) Network {
	network := Network{
		Transitions:  map[string]map[string]*Edge{},
		SpeakerStats: map[string]*SpeakerStats{},
	}

	prevSpeaker := ""
	prevTurn := -1
	var currentEdge *Edge

	for _, dp := range words {
		if !opts.speakerEnabled(dp.Speaker) {
			continue
		}

		stats := network.SpeakerStats[dp.Speaker]
		if stats == nil {
			stats = &SpeakerStats{}
			network.SpeakerStats[dp.Speaker] = stats
		}

		if dp.TurnNumber != prevTurn {
			stats.TurnCount++
			currentEdge = nil
			if prevSpeaker != "" {
				if network.Transitions[prevSpeaker] == nil {
					network.Transitions[prevSpeaker] = map[string]*Edge{}
				}
				edge := network.Transitions[prevSpeaker][dp.Speaker]
				if edge == nil {
					edge = &Edge{}
					network.Transitions[prevSpeaker][dp.Speaker] = edge
				}
				edge.Count++
				currentEdge = edge
			}
			prevSpeaker = dp.Speaker
			prevTurn = dp.TurnNumber
		}

		stats.WordCount++
		if len(stats.Samples) < maxSamplePoints {
			stats.Samples = append(stats.Samples, dp)
		}
		if currentEdge != nil {
			currentEdge.WordCount++
			if len(currentEdge.Samples) < maxSamplePoints {
				currentEdge.Samples = append(currentEdge.Samples, dp)
			}
		}
	}
	return network
}
