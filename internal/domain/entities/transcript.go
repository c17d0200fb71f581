package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Source type constants for transcripts
const (
	SourceText       = "text"
	SourceTabular    = "tabular"
	SourceSubtitle   = "subtitle"
	SourceAssemblyAI = "assemblyai"
)

// Transcript is the stored transcript model. Words is the canonical
// DataPoint array; it is treated as append-only after ingestion, the only
// sanctioned mutations being code application and code clearing, both of
// which bump DataVersion.
type Transcript struct {
	ID                uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title             string                                     `json:"title,omitempty" gorm:"type:varchar(255)"`
	Source            string                                     `json:"source" gorm:"type:varchar(50);not null"`
	DominantFormat    string                                     `json:"dominant_format,omitempty" gorm:"type:varchar(50)"`
	HasTimestamps     bool                                       `json:"has_timestamps" gorm:"default:false"`
	Speakers          []string                                   `json:"speakers,omitempty" gorm:"type:jsonb;serializer:json"`
	TotalLines        int                                        `json:"total_lines,omitempty"`
	ContinuationLines int                                        `json:"continuation_lines,omitempty"`
	Words             []DataPoint                                `json:"words,omitempty" gorm:"type:jsonb;serializer:json"`
	Codes             []CodeEntry                                `json:"codes,omitempty" gorm:"type:jsonb;serializer:json"`
	DataVersion       int64                                      `json:"data_version" gorm:"default:1"`
	RawText           string                                     `json:"raw_text,omitempty" gorm:"type:text"`
	SourceMeta        datatypes.JSONType[map[string]interface{}] `json:"source_meta,omitempty" gorm:"type:jsonb"`
	CreatedAt         time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(source string) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		Source:      source,
		DataVersion: 1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// SpeakerCount returns the number of distinct speakers
func (t *Transcript) SpeakerCount() int {
	return len(t.Speakers)
}
