package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/convolens/convolens/errors"
	"github.com/convolens/convolens/internal/domain/entities"
	"github.com/convolens/convolens/internal/domain/repositories"
	"github.com/convolens/convolens/internal/infrastructure/cache"
)

// Service computes analytics views over stored transcripts, memoizing
// results in a cache keyed by (view, transcript, data version, options
// fingerprint). A stale entry can never be served: code changes bump the
// transcript's data version, which changes the key.
type Service struct {
	repo     repositories.TranscriptRepository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService creates a new analytics service
func NewService(repo repositories.TranscriptRepository, store cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    store,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// load fetches the transcript and pins the timing-dependent option to what
// the data actually supports
func (s *Service) load(ctx context.Context, id uuid.UUID, opts *Options) (*entities.Transcript, error) {
	transcript, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if transcript == nil {
		return nil, apperrors.ErrTranscriptNotFound(id.String())
	}
	opts.HasWordTimings = transcript.HasTimestamps
	return transcript, nil
}

func (s *Service) cacheKey(view string, t *entities.Transcript, opts Options) string {
	return fmt.Sprintf("analytics:%s:%s:v%d:%s", view, t.ID, t.DataVersion, opts.Fingerprint())
}

func (s *Service) getCached(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		if s.logger != nil {
			s.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		}
		s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *Service) putCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, string(raw), s.cacheTTL)
}

// fullStream runs the whole transcript through the same filters but
// without reveal cursor or window, for scrub-stable normalization
func fullStream(t *entities.Transcript, opts Options) []entities.DataPoint {
	full := opts
	full.EndIndex = -1
	full.Window = nil
	return ProcessedWords(t.Words, full)
}

// Words returns the processed word stream with repeat counts annotated
func (s *Service) Words(ctx context.Context, id uuid.UUID, opts Options) ([]entities.DataPoint, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey("words", transcript, opts)
	var result []entities.DataPoint
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = ProcessedWords(transcript.Words, opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// SpeakerGroups returns the processed stream grouped per speaker
func (s *Service) SpeakerGroups(ctx context.Context, id uuid.UUID, opts Options) ([]SpeakerGroup, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey("speaker-groups", transcript, opts)
	var result []SpeakerGroup
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = GroupBySpeaker(ProcessedWords(transcript.Words, opts), opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// TurnGroups returns the processed stream grouped per turn
func (s *Service) TurnGroups(ctx context.Context, id uuid.UUID, opts Options) ([]TurnGroup, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey("turn-groups", transcript, opts)
	var result []TurnGroup
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = GroupByTurn(ProcessedWords(transcript.Words, opts), opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// SpeakerFingerprints returns per-speaker behavior profiles
func (s *Service) SpeakerFingerprints(ctx context.Context, id uuid.UUID, opts Options) ([]Fingerprint, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey("fingerprints", transcript, opts)
	var result []Fingerprint
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	processed := ProcessedWords(transcript.Words, opts)
	result = Fingerprints(processed, fullStream(transcript, opts), opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// Network returns the turn-taking transition graph
func (s *Service) Network(ctx context.Context, id uuid.UUID, opts Options) (Network, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return Network{}, err
	}

	key := s.cacheKey("network", transcript, opts)
	var result Network
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = TurnNetwork(ProcessedWords(transcript.Words, opts), opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// QAPairs returns question/answer turn pairs
func (s *Service) QAPairs(ctx context.Context, id uuid.UUID, opts Options) ([]QAPair, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return nil, err
	}

	key := s.cacheKey("qa-pairs", transcript, opts)
	var result []QAPair
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = QuestionAnswerPairs(ProcessedWords(transcript.Words, opts), opts)
	s.putCache(ctx, key, result)
	return result, nil
}

// Journey returns every occurrence of the search term across the visible
// transcript
func (s *Service) Journey(ctx context.Context, id uuid.UUID, opts Options) (Journey, error) {
	transcript, err := s.load(ctx, id, &opts)
	if err != nil {
		return Journey{}, err
	}

	key := s.cacheKey("journey", transcript, opts)
	var result Journey
	if s.getCached(ctx, key, &result) {
		return result, nil
	}

	result = WordJourney(ProcessedWords(transcript.Words, opts), opts.SearchTerm, opts)
	s.putCache(ctx, key, result)
	return result, nil
}
