package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheragent.app/internal/adapters/infrastructure"
)

// health handles GET /api/health
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := infrastructure.StatusHealthy
	code := http.StatusOK
	if !infrastructure.IsHealthy(components) {
		status = infrastructure.StatusUnhealthy
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": components,
	})
}
