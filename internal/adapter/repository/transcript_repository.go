package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/convolens/convolens/internal/domain/entities"
	"github.com/convolens/convolens/internal/domain/repositories"
)

// TranscriptRepository handles transcript data operations
type TranscriptRepository struct {
	db *gorm.DB
}

var _ repositories.TranscriptRepository = (*TranscriptRepository)(nil)

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create persists a new transcript
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Create(transcript).Error
}

// GetByID retrieves a transcript by ID, returning (nil, nil) when missing
func (r *TranscriptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// List returns transcripts newest first. The word arrays are omitted so a
// listing stays cheap even with large transcripts.
func (r *TranscriptRepository) List(ctx context.Context, limit, offset int) ([]entities.Transcript, error) {
	var transcripts []entities.Transcript
	err := r.db.WithContext(ctx).
		Omit("words", "raw_text").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transcripts).Error
	if err != nil {
		return nil, err
	}
	return transcripts, nil
}

// Update saves the full transcript row
func (r *TranscriptRepository) Update(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Where("id = ?", transcript.ID).
		Save(transcript).Error
}

// Delete removes a transcript
func (r *TranscriptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Transcript{}, id).Error
}
