package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	analyticsdto "github.com/convolens/convolens/internal/adapter/dto/analytics"
	analyticsUsecase "github.com/convolens/convolens/internal/usecase/analytics"
	"github.com/convolens/convolens/pkg/config"
)

// Analytics handles analytics view HTTP requests
type Analytics struct {
	service *analyticsUsecase.Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analyticsUsecase.Service, cfg *config.Config, logger *zap.Logger) *Analytics {
	return &Analytics{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

// buildOptions merges query parameters over the configured defaults. Absent
// parameters keep the server defaults; present ones win.
func (h *Analytics) buildOptions(q analyticsdto.Query) analyticsUsecase.Options {
	opts := analyticsUsecase.Options{
		EndIndex:           -1,
		FilterStopWords:    h.cfg.Analytics.FilterStopWords,
		LastWordMode:       h.cfg.Analytics.LastWordMode,
		EchoMode:           h.cfg.Analytics.EchoMode,
		ScaleToVisibleData: h.cfg.Analytics.ScaleToVisibleData,
		SortSpeakersBy:     analyticsUsecase.SortSpeakersByWords,
	}

	if q.EndIndex != nil {
		opts.EndIndex = *q.EndIndex
	}
	if q.WindowLeft != nil && q.WindowRight != nil {
		opts.Window = &analyticsUsecase.TimeWindow{Left: *q.WindowLeft, Right: *q.WindowRight}
	}
	if q.FilterStopWords != nil {
		opts.FilterStopWords = *q.FilterStopWords
	}
	if q.LastWordMode != nil {
		opts.LastWordMode = *q.LastWordMode
	}
	if q.EchoMode != nil {
		opts.EchoMode = *q.EchoMode
	}
	if q.ScaleToVisibleData != nil {
		opts.ScaleToVisibleData = *q.ScaleToVisibleData
	}
	if len(q.Speakers) > 0 {
		opts.EnabledSpeakers = q.Speakers
	}
	if q.SortBy != "" {
		opts.SortSpeakersBy = q.SortBy
	}

	return opts
}

// Words handles GET /transcripts/:id/analytics/words
// @Summary      Processed word stream
// @Description  Returns the visible word stream with repeat counts annotated
// @Tags         Analytics
// @Produce      json
// @Param        id  path  string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/words [get]
func (h *Analytics) Words(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.Query
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.Words(c.Request().Context(), id, h.buildOptions(q))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"words": result,
		"count": len(result),
	})
}

// Groups handles GET /transcripts/:id/analytics/groups
// @Summary      Grouped word stream
// @Description  Groups the visible word stream by speaker (default) or by turn
// @Tags         Analytics
// @Produce      json
// @Param        id  path   string  true   "Transcript ID (UUID)"
// @Param        by  query  string  false  "Grouping axis: speaker or turn"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/groups [get]
func (h *Analytics) Groups(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.GroupQuery
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	opts := h.buildOptions(q.Query)

	if q.By == "turn" {
		result, err := h.service.TurnGroups(c.Request().Context(), id, opts)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{"turns": result})
	}

	result, err := h.service.SpeakerGroups(c.Request().Context(), id, opts)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{"speakers": result})
}

// Fingerprints handles GET /transcripts/:id/analytics/fingerprints
// @Summary      Speaker fingerprints
// @Description  Per-speaker behavior profiles with metrics normalized to [0, 1]
// @Tags         Analytics
// @Produce      json
// @Param        id  path  string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/fingerprints [get]
func (h *Analytics) Fingerprints(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.Query
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.SpeakerFingerprints(c.Request().Context(), id, h.buildOptions(q))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{"fingerprints": result})
}

// Network handles GET /transcripts/:id/analytics/network
// @Summary      Turn-taking network
// @Description  Speaker transition graph with per-edge counts and sample words
// @Tags         Analytics
// @Produce      json
// @Param        id  path  string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/network [get]
func (h *Analytics) Network(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.Query
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.Network(c.Request().Context(), id, h.buildOptions(q))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, result)
}

// QAPairs handles GET /transcripts/:id/analytics/qa-pairs
// @Summary      Question and answer pairs
// @Description  Pairs each question turn with the next turn by a different enabled speaker
// @Tags         Analytics
// @Produce      json
// @Param        id  path  string  true  "Transcript ID (UUID)"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/qa-pairs [get]
func (h *Analytics) QAPairs(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.Query
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.QAPairs(c.Request().Context(), id, h.buildOptions(q))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"pairs": result,
		"count": len(result),
	})
}

// Journey handles GET /transcripts/:id/analytics/journey
// @Summary      Word journey
// @Description  Every occurrence of the search term across the visible transcript, in time order
// @Tags         Analytics
// @Produce      json
// @Param        id    path   string  true  "Transcript ID (UUID)"
// @Param        term  query  string  true  "Search term (substring match on normalized words)"
// @Success      200  {object}  map[string]interface{}
// @Router       /transcripts/{id}/analytics/journey [get]
func (h *Analytics) Journey(c echo.Context) error {
	id, err := parseTranscriptID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var q analyticsdto.JourneyQuery
	if err := bindAndValidate(c, &q); err != nil {
		return HandleError(h.logger, c, err)
	}

	opts := h.buildOptions(q.Query)
	opts.SearchTerm = q.Term

	result, err := h.service.Journey(c.Request().Context(), id, opts)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if max := h.cfg.Analytics.MaxJourneyResults; max > 0 && len(result.Occurrences) > max {
		result.Occurrences = result.Occurrences[:max]
	}

	return HandleSuccess(h.logger, c, http.StatusOK, result)
}
