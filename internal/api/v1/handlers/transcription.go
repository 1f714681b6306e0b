package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turboscribe/internal/api/middleware"
	"turboscribe/internal/api/v1/services"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /api/transcribe. It accepts a multipart form with
// a single `file` field and responds with the transcribed text and the new
// record id.
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	file, err := middleware.ValidateUpload(c)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Transcribe(c.Request.Context(), middleware.UserID(c), file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/transcriptions. Returns the caller's transcriptions
// newest first.
func (h *TranscriptionHandler) List(c *gin.Context) {
	response, err := h.service.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
