package transcript

import (
	"time"

	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/domain/entities"
)

// TranscriptResponse is the summary view of a stored transcript
type TranscriptResponse struct {
	ID                uuid.UUID            `json:"id"`
	Title             string               `json:"title"`
	Source            string               `json:"source"`
	DominantFormat    string               `json:"dominant_format"`
	HasTimestamps     bool                 `json:"has_timestamps"`
	Speakers          []string             `json:"speakers"`
	TotalLines        int                  `json:"total_lines"`
	ContinuationLines int                  `json:"continuation_lines"`
	WordCount         int                  `json:"word_count"`
	TurnCount         int                  `json:"turn_count"`
	Codes             []entities.CodeEntry `json:"codes"`
	DataVersion       int64                `json:"data_version"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// TranscriptDetailResponse adds the full word stream and rebuilt turns
type TranscriptDetailResponse struct {
	TranscriptResponse
	Words []entities.DataPoint `json:"words"`
	Turns []entities.Turn      `json:"turns"`
}

// ListTranscriptsResponse is a page of transcript summaries
type ListTranscriptsResponse struct {
	Transcripts []TranscriptResponse `json:"transcripts"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}
