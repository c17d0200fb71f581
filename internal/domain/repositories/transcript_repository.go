package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/convolens/convolens/internal/domain/entities"
)

// TranscriptRepository defines transcript persistence operations
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)
	List(ctx context.Context, limit, offset int) ([]entities.Transcript, error)
	Update(ctx context.Context, transcript *entities.Transcript) error
	Delete(ctx context.Context, id uuid.UUID) error
}
