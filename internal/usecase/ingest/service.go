package ingest

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/convolens/convolens/errors"
	"github.com/convolens/convolens/internal/domain/entities"
	"github.com/convolens/convolens/internal/domain/repositories"
)

// Service orchestrates transcript ingestion: source parsing, word stream
// construction and persistence
type Service struct {
	repo   repositories.TranscriptRepository
	codes  *CodeParser
	logger *zap.Logger
}

// NewService creates a new ingest service
func NewService(repo repositories.TranscriptRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		codes:  NewCodeParser(logger),
		logger: logger,
	}
}

// TextOptions control free-text ingestion
type TextOptions struct {
	Title            string
	ForcedFormat     string
	MergeSameSpeaker bool
}

// IngestText parses pasted free text and stores the normalized transcript.
// Free-text parsing never rejects lines; unrecognized lines degrade to
// continuations, so the only failure here is fully empty input.
func (s *Service) IngestText(ctx context.Context, text string, opts TextOptions) (*entities.Transcript, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrTranscriptEmpty()
	}

	parsed := ParseTranscriptText(text, opts.ForcedFormat)
	turns := parsed.Turns
	if opts.MergeSameSpeaker {
		turns = MergeSameSpeakerTurns(turns)
	}

	transcript := entities.NewTranscript(entities.SourceText)
	transcript.Title = opts.Title
	transcript.DominantFormat = parsed.DominantFormat
	transcript.HasTimestamps = parsed.HasTimestamps
	transcript.Speakers = parsed.Speakers
	transcript.TotalLines = parsed.TotalLines
	transcript.ContinuationLines = parsed.ContinuationLines
	transcript.Words = BuildDataPoints(turns)
	transcript.RawText = text

	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("transcript ingested",
			zap.String("transcript_id", transcript.ID.String()),
			zap.String("dominant_format", parsed.DominantFormat),
			zap.Int("turns", len(turns)),
			zap.Int("words", len(transcript.Words)),
			zap.Int("speakers", len(parsed.Speakers)),
		)
	}
	return transcript, nil
}

// IngestTabular parses transcript-shaped CSV rows (speaker/content with
// optional start/end columns) and stores the normalized transcript
func (s *Service) IngestTabular(ctx context.Context, title, csvText string) (*entities.Transcript, error) {
	table, err := ReadCSV(csvText)
	if err != nil {
		return nil, apperrors.ErrImportParseFailed("tabular", err)
	}
	if IsAnnotationTable(table) {
		return nil, apperrors.ErrInvalidArgument("file looks like an annotation file, not a transcript; use the codes endpoint")
	}
	turns, err := ParseTabularTranscript(table)
	if err != nil {
		return nil, apperrors.ErrImportParseFailed("tabular", err)
	}

	transcript := entities.NewTranscript(entities.SourceTabular)
	transcript.Title = title
	transcript.HasTimestamps = anyTimestamp(turns)
	transcript.Speakers = distinctSpeakers(turns)
	transcript.TotalLines = len(turns)
	transcript.Words = BuildDataPoints(turns)
	transcript.RawText = csvText

	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return transcript, nil
}

// IngestSubtitles parses an SRT cue list into a single-speaker transcript
func (s *Service) IngestSubtitles(ctx context.Context, title, srtText string) (*entities.Transcript, error) {
	turns, err := ParseSubtitles(srtText)
	if err != nil {
		return nil, apperrors.ErrSubtitleParseFailed(err)
	}

	transcript := entities.NewTranscript(entities.SourceSubtitle)
	transcript.Title = title
	transcript.HasTimestamps = true
	transcript.Speakers = distinctSpeakers(turns)
	transcript.TotalLines = len(turns)
	transcript.Words = BuildDataPoints(turns)
	transcript.RawText = srtText

	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return transcript, nil
}

// IngestAssemblyAI decodes an AssemblyAI transcript JSON export and stores
// the normalized transcript, keeping the export's per-word timings
func (s *Service) IngestAssemblyAI(ctx context.Context, title string, payload []byte) (*entities.Transcript, error) {
	words, speakers, err := ParseAssemblyAIExport(payload)
	if err != nil {
		return nil, apperrors.ErrImportParseFailed("assemblyai", err)
	}

	transcript := entities.NewTranscript(entities.SourceAssemblyAI)
	transcript.Title = title
	transcript.HasTimestamps = true
	transcript.Speakers = speakers
	transcript.Words = words

	if err := s.repo.Create(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return transcript, nil
}

// Get loads a transcript by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	transcript, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	if transcript == nil {
		return nil, apperrors.ErrTranscriptNotFound(id.String())
	}
	return transcript, nil
}

// List returns a page of transcripts, newest first
func (s *Service) List(ctx context.Context, limit, offset int) ([]entities.Transcript, error) {
	transcripts, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return transcripts, nil
}

// Delete removes a transcript
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	transcript, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, transcript.ID); err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// ApplyCodesCSV parses an annotation CSV and overlays its codes onto the
// transcript's word stream. Detection is permissive, but once a file is
// claimed as an annotation file a missing column signature is a hard error.
func (s *Service) ApplyCodesCSV(ctx context.Context, id uuid.UUID, fileName, csvText string) (*entities.Transcript, error) {
	transcript, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	table, err := ReadCSV(csvText)
	if err != nil {
		return nil, apperrors.ErrCodeFileNotRecognized(err)
	}
	if !IsAnnotationTable(table) {
		return nil, apperrors.ErrInvalidArgument("file looks like a transcript, not an annotation file")
	}

	set, err := s.codes.Parse(table, fileName)
	if err != nil {
		return nil, apperrors.ErrCodeFileNotRecognized(err)
	}

	s.codes.Apply(transcript.Words, set)
	transcript.Codes = DiscoverCodes(transcript.Codes, set)
	transcript.DataVersion++

	if err := s.repo.Update(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("annotation codes applied",
			zap.String("transcript_id", transcript.ID.String()),
			zap.Int("turn_codes", len(set.TurnCodes)),
			zap.Int("time_codes", len(set.TimeCodes)),
			zap.Int64("data_version", transcript.DataVersion),
		)
	}
	return transcript, nil
}

// ClearCodes removes every code from the word stream and empties the code
// registry
func (s *Service) ClearCodes(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	transcript, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ClearCodes(transcript.Words)
	transcript.Codes = nil
	transcript.DataVersion++

	if err := s.repo.Update(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return transcript, nil
}

func anyTimestamp(turns []entities.ParsedTurn) bool {
	for _, t := range turns {
		if t.StartTime != nil || t.EndTime != nil {
			return true
		}
	}
	return false
}

func distinctSpeakers(turns []entities.ParsedTurn) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range turns {
		if !seen[t.Speaker] {
			seen[t.Speaker] = true
			out = append(out, t.Speaker)
		}
	}
	return out
}
