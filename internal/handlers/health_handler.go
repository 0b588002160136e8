package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint. This service
// holds no connections of its own; liveness is answering at all. The
// identity provider and document backend are checked per-request, not
// here, so a dependency outage never flaps the health probe.
type HealthCheckHandler struct{}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{}
}

// HealthCheck reports service liveness.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
