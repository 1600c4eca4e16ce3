package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Represents the health check response
type HealthResponse struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	Uptime     string    `json:"uptime"`
	Domain     string    `json:"domain"`
	QueueDepth int       `json:"queue_depth"`
}

// HandleHealth returns the health status of the API server along with the
// pipeline's domain and current queue depth
func HandleHealth(version string, startTime time.Time, pipeline Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		uptime := time.Since(startTime)
		stats := pipeline.Stats()

		response := HealthResponse{
			Status:     "healthy",
			Timestamp:  time.Now(),
			Version:    version,
			Uptime:     uptime.String(),
			Domain:     pipeline.Domain(),
			QueueDepth: stats.QueueDepth,
		}

		c.JSON(http.StatusOK, response)
	}
}
