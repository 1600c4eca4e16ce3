package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/collector"
)

// StatsResponse wraps pipeline counters with the domain they belong to
type StatsResponse struct {
	Domain string          `json:"domain"`
	Stats  collector.Stats `json:"stats"`
}

// HandleStats returns a snapshot of the pipeline counters
func HandleStats(pipeline Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, StatsResponse{
			Domain: pipeline.Domain(),
			Stats:  pipeline.Stats(),
		})
	}
}
