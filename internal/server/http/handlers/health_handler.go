package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talleres-esperanza/comedor/internal/server/http/dto"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Status handles GET /api/health.
func (h *HealthHandler) Status(c *gin.Context) {
	health := h.facade.Health(c.Request.Context())
	c.JSON(http.StatusOK, dto.HealthResponse{Status: health.Status, Database: health.Database})
}
