package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/resources"
)

// HandleRuntime returns a process resource snapshot for the daemon: system
// memory, Go runtime statistics, and uptime. Operators use it to spot queue
// or cache memory growth before it affects collection.
func HandleRuntime(instanceName string, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resources.Gather(instanceName, startTime))
	}
}
