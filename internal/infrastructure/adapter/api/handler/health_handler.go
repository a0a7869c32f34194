package handler

import (
	"context"
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 3 * time.Second

// HealthChecker reports store health
type HealthChecker interface {
	Health(ctx context.Context) database.HealthStatus
}

// HealthHandler serves the liveness and store health endpoint
type HealthHandler struct {
	checker HealthChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := h.checker.Health(ctx)
	if !status.Up {
		h.logger.Warn("Health check failed", map[string]any{"error": status.Error})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "down",
			Database: status.Pool,
			Error:    status.Error,
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "up", Database: status.Pool})
}
