package transcript

import "encoding/json"

// IngestTextRequest represents the request to ingest a pasted transcript
type IngestTextRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
	Text  string `json:"text" validate:"required"`
	// Format pins the line parser to a single format instead of the cascade
	Format           string `json:"format" validate:"omitempty,oneof=speaker-tab-time time-tab-speaker bracket-speaker bracket-plain clock colon tab plain"`
	MergeSameSpeaker bool   `json:"merge_same_speaker"`
}

// ImportSubtitlesRequest represents the request to import an SRT subtitle file
type ImportSubtitlesRequest struct {
	Title   string `json:"title" validate:"omitempty,max=255"`
	Content string `json:"content" validate:"required"`
}

// ImportAssemblyAIRequest carries a raw AssemblyAI transcript export
type ImportAssemblyAIRequest struct {
	Title   string          `json:"title" validate:"omitempty,max=255"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// ImportTabularRequest represents the request to import a CSV transcript
type ImportTabularRequest struct {
	Title string `json:"title" validate:"omitempty,max=255"`
	CSV   string `json:"csv" validate:"required"`
}

// ApplyCodesRequest carries an annotation file to apply to a transcript.
// FileName is used to synthesize a code name when the file has no code column.
type ApplyCodesRequest struct {
	FileName string `json:"file_name" validate:"omitempty,max=255"`
	CSV      string `json:"csv" validate:"required"`
}

// ListTranscriptsRequest represents query parameters for listing transcripts
type ListTranscriptsRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"page_size" validate:"min=0,max=100"`
}
