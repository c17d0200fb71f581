package ingest

import (
	"encoding/json"
	"fmt"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/convolens/convolens/internal/domain/entities"
)

// ParseAssemblyAIExport decodes an AssemblyAI transcript JSON export into
// the canonical word array, keeping the per-word timings the export
// carries. Utterances become turns; when the export has no utterances,
// turns are cut on speaker change over the flat word list. Times are
// milliseconds in the export and seconds here.
func ParseAssemblyAIExport(payload []byte) ([]entities.DataPoint, []string, error) {
	var transcript aai.Transcript
	if err := json.Unmarshal(payload, &transcript); err != nil {
		return nil, nil, fmt.Errorf("decode assemblyai export: %w", err)
	}

	if len(transcript.Utterances) > 0 {
		return fromUtterances(transcript.Utterances)
	}
	if len(transcript.Words) > 0 {
		return fromFlatWords(transcript.Words)
	}
	return nil, nil, fmt.Errorf("assemblyai export has no words")
}

func fromUtterances(utterances []aai.TranscriptUtterance) ([]entities.DataPoint, []string, error) {
	var out []entities.DataPoint
	var speakers []string
	seen := map[string]bool{}

	for i, utt := range utterances {
		speaker := aaiSpeaker(utt.Speaker)
		if !seen[speaker] {
			seen[speaker] = true
			speakers = append(speakers, speaker)
		}
		for _, w := range utt.Words {
			dp, ok := aaiWord(w, speaker, i+1)
			if !ok {
				continue
			}
			out = append(out, dp)
		}
	}
	if len(out) == 0 {
		return nil, nil, fmt.Errorf("assemblyai utterances carry no words")
	}
	return out, speakers, nil
}

func fromFlatWords(words []aai.TranscriptWord) ([]entities.DataPoint, []string, error) {
	var out []entities.DataPoint
	var speakers []string
	seen := map[string]bool{}

	turn := 0
	prevSpeaker := ""
	for _, w := range words {
		speaker := aaiSpeaker(w.Speaker)
		if turn == 0 || speaker != prevSpeaker {
			turn++
			prevSpeaker = speaker
		}
		if !seen[speaker] {
			seen[speaker] = true
			speakers = append(speakers, speaker)
		}
		dp, ok := aaiWord(w, speaker, turn)
		if !ok {
			continue
		}
		out = append(out, dp)
	}
	if len(out) == 0 {
		return nil, nil, fmt.Errorf("assemblyai export has no usable words")
	}
	return out, speakers, nil
}

func aaiWord(w aai.TranscriptWord, speaker string, turn int) (entities.DataPoint, bool) {
	if w.Text == nil {
		return entities.DataPoint{}, false
	}
	norm := NormalizeWord(*w.Text)
	if norm == "" {
		return entities.DataPoint{}, false
	}
	dp := entities.DataPoint{
		Speaker:     speaker,
		TurnNumber:  turn,
		Word:        norm,
		DisplayWord: *w.Text,
		Count:       1,
	}
	if w.Start != nil {
		dp.StartTime = float64(*w.Start) / 1000.0
	}
	if w.End != nil {
		dp.EndTime = float64(*w.End) / 1000.0
	}
	if dp.EndTime < dp.StartTime {
		dp.EndTime = dp.StartTime
	}
	return dp, true
}

func aaiSpeaker(label *string) string {
	if label == nil || *label == "" {
		return DefaultSpeaker
	}
	return "Speaker " + *label
}
