package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"turboscribe/internal/api/middleware"
	"turboscribe/internal/api/v1/services"
)

// StatsHandler handles dashboard statistics endpoints
type StatsHandler struct {
	service services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service services.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetDashboardStats handles GET /api/stats
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	response, err := h.service.GetDashboardStats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
