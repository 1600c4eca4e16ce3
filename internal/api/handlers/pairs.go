package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/llm"
)

// PairRequest asks the daemon to generate a response pair for a prompt.
type PairRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Domain string `json:"domain"`
}

// PairResponse carries the generated pair plus generation metadata so the
// client can attach model attribution and latencies to its submission.
type PairResponse struct {
	ResponseA     string  `json:"response_a"`
	ResponseB     string  `json:"response_b"`
	ResponseTimeA float64 `json:"response_time_a"`
	ResponseTimeB float64 `json:"response_time_b"`
	Model         string  `json:"model"`
	Placeholder   bool    `json:"placeholder"`
}

// HandleGeneratePair generates two candidate responses for annotation. When
// the daemon runs without a generation backend the endpoint returns 503.
func HandleGeneratePair(gen PairGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gen == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "pair generation is not configured on this daemon",
			})
			return
		}

		var req PairRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pair := llm.GeneratePair(c.Request.Context(), gen, req.Prompt, req.Domain)

		c.JSON(http.StatusOK, PairResponse{
			ResponseA:     pair.ResponseA,
			ResponseB:     pair.ResponseB,
			ResponseTimeA: pair.ResponseTimeA,
			ResponseTimeB: pair.ResponseTimeB,
			Model:         pair.Model,
			Placeholder:   pair.Placeholder,
		})
	}
}
