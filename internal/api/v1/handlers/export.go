package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"turboscribe/internal/api/middleware"
	"turboscribe/internal/api/v1/services"
)

// ExportHandler handles transcription export endpoints
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export handles GET /api/export. Streams the caller's transcriptions as an
// xlsx attachment.
func (h *ExportHandler) Export(c *gin.Context) {
	fileName := fmt.Sprintf("transcriptions-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := h.service.ExportTranscriptions(c.Request.Context(), middleware.UserID(c), c.Writer); err != nil {
		// headers may already be gone; reset what we can
		middleware.HandleError(c, err)
		return
	}
}
