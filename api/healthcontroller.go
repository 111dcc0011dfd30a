package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterHealthRoutes wires the health endpoint.
func RegisterHealthRoutes(r *gin.Engine, s *Server) {
	r.GET("/api/health", s.handleHealth)
}

// handleHealth reports service status and feed freshness.
// GET /api/health
func (s *Server) handleHealth(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if feed, err := s.store.Load(); err == nil {
		status["last_updated"] = feed.LastUpdated
		status["total_items"] = feed.TotalItems
		status["stale"] = time.Since(feed.LastUpdated) > 48*time.Hour
	} else {
		status["feed"] = "unavailable"
	}

	c.JSON(http.StatusOK, status)
}
