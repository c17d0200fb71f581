package presenter

import (
	"github.com/convolens/convolens/internal/adapter/dto/transcript"
	"github.com/convolens/convolens/internal/domain/entities"
)

// ToTranscriptResponse converts a transcript entity to its summary DTO
func ToTranscriptResponse(t *entities.Transcript) transcript.TranscriptResponse {
	if t == nil {
		return transcript.TranscriptResponse{}
	}

	turnCount := 0
	for _, dp := range t.Words {
		if dp.TurnNumber > turnCount {
			turnCount = dp.TurnNumber
		}
	}

	speakers := t.Speakers
	if speakers == nil {
		speakers = []string{}
	}
	codes := t.Codes
	if codes == nil {
		codes = []entities.CodeEntry{}
	}

	return transcript.TranscriptResponse{
		ID:                t.ID,
		Title:             t.Title,
		Source:            t.Source,
		DominantFormat:    t.DominantFormat,
		HasTimestamps:     t.HasTimestamps,
		Speakers:          speakers,
		TotalLines:        t.TotalLines,
		ContinuationLines: t.ContinuationLines,
		WordCount:         len(t.Words),
		TurnCount:         turnCount,
		Codes:             codes,
		DataVersion:       t.DataVersion,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToTranscriptDetailResponse converts a transcript entity to its full DTO,
// including the word stream and turns rebuilt from it
func ToTranscriptDetailResponse(t *entities.Transcript) transcript.TranscriptDetailResponse {
	if t == nil {
		return transcript.TranscriptDetailResponse{}
	}

	words := t.Words
	if words == nil {
		words = []entities.DataPoint{}
	}

	return transcript.TranscriptDetailResponse{
		TranscriptResponse: ToTranscriptResponse(t),
		Words:              words,
		Turns:              entities.BuildTurns(words),
	}
}

// ToTranscriptListResponse converts a page of transcript entities
func ToTranscriptListResponse(items []entities.Transcript, page, pageSize int) transcript.ListTranscriptsResponse {
	responses := make([]transcript.TranscriptResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToTranscriptResponse(&items[i]))
	}
	return transcript.ListTranscriptsResponse{
		Transcripts: responses,
		Page:        page,
		PageSize:    pageSize,
	}
}
