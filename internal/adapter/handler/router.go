package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/convolens/convolens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *Transcript
	analyticsHandler  *Analytics
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, transcriptHandler *Transcript, analyticsHandler *Analytics) *Router {
	return &Router{
		cfg:               cfg,
		transcriptHandler: transcriptHandler,
		analyticsHandler:  analyticsHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupTranscriptRoutes(v1)
	rt.setupAnalyticsRoutes(v1)
}

// setupTranscriptRoutes configures ingestion and management routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcripts := g.Group("/transcripts")

	transcripts.POST("", rt.transcriptHandler.Ingest)
	transcripts.GET("", rt.transcriptHandler.List)
	transcripts.POST("/import/subtitles", rt.transcriptHandler.ImportSubtitles)
	transcripts.POST("/import/assemblyai", rt.transcriptHandler.ImportAssemblyAI)
	transcripts.POST("/import/tabular", rt.transcriptHandler.ImportTabular)
	transcripts.GET("/:id", rt.transcriptHandler.Get)
	transcripts.DELETE("/:id", rt.transcriptHandler.Delete)
	transcripts.POST("/:id/codes", rt.transcriptHandler.ApplyCodes)
	transcripts.DELETE("/:id/codes", rt.transcriptHandler.ClearCodes)
}

// setupAnalyticsRoutes configures the analytics views
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analytics := g.Group("/transcripts/:id/analytics")

	analytics.GET("/words", rt.analyticsHandler.Words)
	analytics.GET("/groups", rt.analyticsHandler.Groups)
	analytics.GET("/fingerprints", rt.analyticsHandler.Fingerprints)
	analytics.GET("/network", rt.analyticsHandler.Network)
	analytics.GET("/qa-pairs", rt.analyticsHandler.QAPairs)
	analytics.GET("/journey", rt.analyticsHandler.Journey)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
