package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/convolens/convolens/errors"
	transcriptdto "github.com/convolens/convolens/internal/adapter/dto/transcript"
	"github.com/convolens/convolens/internal/adapter/presenter"
	"github.com/convolens/convolens/internal/usecase/ingest"
)

// Transcript handles transcript ingestion and management HTTP requests
type Transcript struct {
	service *ingest.Service
	logger  *zap.Logger
}

// NewTranscriptHandler creates a new transcript handler
func NewTranscriptHandler(service *ingest.Service, logger *zap.Logger) *Transcript {
	return &Transcript{
		service: service,
		logger:  logger,
	}
}

func parseTranscriptID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidArgument("transcript id must be a UUID")
	}
	return id, nil
}

// Ingest handles POST /transcripts
// @Summary      Ingest a pasted transcript
// @Description  Parses free transcript text through the line format cascade and stores the normalized word stream
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.IngestTextRequest  true  "Transcript text"
// @Success      201      {object}  transcript.TranscriptDetailResponse
// @Failure      400      {object}  map[string]interface{}  "Empty or invalid transcript"
// @Router       /transcripts [post]
func (h *Transcript) Ingest(c echo.Context) error {
	var req transcriptdto.IngestTextRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.IngestText(c.Request().Context(), req.Text, ingest.TextOptions{
		Title:            req.Title,
		ForcedFormat:     req.Format,
		MergeSameSpeaker: req.MergeSameSpeaker,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTranscriptDetailResponse(result))
}

// ImportSubtitles handles POST /transcripts/import/subtitles
// @Summary      Import an SRT subtitle file
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.ImportSubtitlesRequest  true  "Subtitle file content"
// @Success      201      {object}  transcript.TranscriptDetailResponse
// @Failure      400      {object}  map[string]interface{}  "Subtitle file could not be parsed"
// @Router       /transcripts/import/subtitles [post]
func (h *Transcript) ImportSubtitles(c echo.Context) error {
	var req transcriptdto.ImportSubtitlesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.IngestSubtitles(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTranscriptDetailResponse(result))
}

// ImportAssemblyAI handles POST /transcripts/import/assemblyai
// @Summary      Import an AssemblyAI transcript export
// @Description  Decodes an AssemblyAI JSON export, preferring utterances and falling back to the flat word list
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.ImportAssemblyAIRequest  true  "AssemblyAI export payload"
// @Success      201      {object}  transcript.TranscriptDetailResponse
// @Failure      400      {object}  map[string]interface{}  "Export could not be decoded"
// @Router       /transcripts/import/assemblyai [post]
func (h *Transcript) ImportAssemblyAI(c echo.Context) error {
	var req transcriptdto.ImportAssemblyAIRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.IngestAssemblyAI(c.Request().Context(), req.Title, req.Payload)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTranscriptDetailResponse(result))
}

// ImportTabular handles POST /transcripts/import/tabular
// @Summary      Import a CSV transcript
// @Tags         Transcripts
// @Accept       json
// @Produce      json
// @Param        request  body      transcript.ImportTabularRequest  true  "CSV content with speaker/content columns"
// @Success      201      {object}  transcript.TranscriptDetailResponse
// @Failure      400      {object}  map[string]interface{}  "CSV is not transcript-shaped"
// @Router       /transcripts/import/tabular [post]
func (h *Transcript) ImportTabular(c echo.Context) error {
	var req transcriptdto.ImportTabularRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.IngestTabular(c.Request().Context(), req.Title, req.CSV)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToTranscriptDetailResponse(result))
}

// List handles GET /transcripts
// @Summary      List transcripts
// @Tags         Transcripts
// @Produce      json
// @Param        page       query     int  false  "Page number (1-based)"
// @Param        page_size  query     int  false  "Page size (default 20, max 100)"
// @Success      200        {object}  transcript.ListTranscriptsResponse
// @Router       /transcripts [get]
func (h *Transcript) List(c echo.Context) error {
	var req transcriptdto.ListTranscriptsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	items, err := h.service.List(c.Request().Context(), req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTranscriptListResponse(items, req.Page, req.PageSize))
}

// Get handles GET /transcripts/:id
// @Summary      Get a transcript
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  transcript.TranscriptDetailResponse
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id} [get]
func (h *Transcript) Get(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTranscriptDetailResponse(result))
}

// Delete handles DELETE /transcripts/:id
// @Summary      Delete a transcript
// @Tags         Transcripts
// @Produce      json
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id} [delete]
func (h *Transcript) Delete(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{"deleted": id})
}

// ApplyCodes handles POST /transcripts/:id/codes
// @Summary      Apply annotation codes
// @Description  Parses an annotation CSV (turn, turn-range or time based) and overlays its codes onto the word stream
// @Tags         Codes
// @Accept       json
// @Produce      json
// @Param        id       path      string  true  "Transcript ID (UUID)"
// @Param        request  body      transcript.ApplyCodesRequest  true  "Annotation file"
// @Success      200      {object}  transcript.TranscriptDetailResponse
// @Failure      400      {object}  map[string]interface{}  "File format not recognized"
// @Router       /transcripts/{id}/codes [post]
func (h *Transcript) ApplyCodes(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req transcriptdto.ApplyCodesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.ApplyCodesCSV(c.Request().Context(), id, req.FileName, req.CSV)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTranscriptDetailResponse(result))
}

// ClearCodes handles DELETE /transcripts/:id/codes
// @Summary      Remove all annotation codes
// @Tags         Codes
// @Produce      json
// @Param        id   path      string  true  "Transcript ID (UUID)"
// @Success      200  {object}  transcript.TranscriptDetailResponse
// @Failure      404  {object}  map[string]interface{}  "Transcript not found"
// @Router       /transcripts/{id}/codes [delete]
func (h *Transcript) ClearCodes(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.ClearCodes(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToTranscriptDetailResponse(result))
}
