package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"turboscribe/internal/api/middleware"
	"turboscribe/internal/api/v1/handlers"
	"turboscribe/internal/api/v1/services"
	"turboscribe/internal/app/auth"
)

// ServiceContainer holds the services the API routes depend on.
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	StatsService         services.StatsService
	ExportService        services.ExportService
	SessionVerifier      auth.SessionVerifier
	Logger               *slog.Logger
}

// RegisterRoutes registers all API routes. Every route requires a session.
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	router.Use(middleware.SessionAuth(container.SessionVerifier, container.Logger))

	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	router.POST("/transcribe", transcriptionHandler.Transcribe)
	router.GET("/transcriptions", transcriptionHandler.List)

	statsHandler := handlers.NewStatsHandler(container.StatsService)
	router.GET("/stats", statsHandler.GetDashboardStats)

	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}
