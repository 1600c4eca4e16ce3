package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/collector"
	"github.com/zuup-ai/zuup-collect/internal/logging"
)

// SubmitRequest is the JSON payload for submitting a pairwise comparison.
// Domain is optional: the pipeline stamps its configured domain regardless,
// so clients only need to send the comparison itself.
type SubmitRequest struct {
	Category       string            `json:"category"`
	Prompt         string            `json:"prompt" binding:"required"`
	ResponseA      string            `json:"response_a" binding:"required"`
	ResponseB      string            `json:"response_b" binding:"required"`
	Preference     string            `json:"preference" binding:"required"`
	UserID         string            `json:"user_id" binding:"required"`
	SessionID      string            `json:"session_id"`
	ResponseAModel string            `json:"response_a_model"`
	ResponseBModel string            `json:"response_b_model"`
	ResponseTimeA  float64           `json:"response_time_a"`
	ResponseTimeB  float64           `json:"response_time_b"`
	Confidence     float64           `json:"confidence"`
	Context        map[string]string `json:"context"`
}

// SubmitResponse reports whether the comparison entered the submission
// queue and the pipeline counters after the attempt.
type SubmitResponse struct {
	Accepted bool            `json:"accepted"`
	Stats    collector.Stats `json:"stats"`
}

// HandleSubmit runs an inbound comparison through the ingestion pipeline.
// Accepted comparisons return 202 since delivery to the remote store
// happens asynchronously; rejections return 422 with current counters so
// clients can distinguish quality rejections from duplicates.
func HandleSubmit(pipeline Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		side := collector.Side(req.Preference)
		if !side.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "preference must be one of A, B, TIE",
			})
			return
		}

		accepted := pipeline.Submit(collector.Comparison{
			Category:       req.Category,
			Prompt:         req.Prompt,
			ResponseA:      req.ResponseA,
			ResponseB:      req.ResponseB,
			Preference:     side,
			UserID:         req.UserID,
			SessionID:      req.SessionID,
			ResponseAModel: req.ResponseAModel,
			ResponseBModel: req.ResponseBModel,
			ResponseTimeA:  req.ResponseTimeA,
			ResponseTimeB:  req.ResponseTimeB,
			Confidence:     req.Confidence,
			Context:        req.Context,
		})

		response := SubmitResponse{
			Accepted: accepted,
			Stats:    pipeline.Stats(),
		}

		if !accepted {
			logging.Debug("Comparison from user %s rejected by pipeline", req.UserID)
			c.JSON(http.StatusUnprocessableEntity, response)
			return
		}

		c.JSON(http.StatusAccepted, response)
	}
}

// FlushResponse reports the result of a manual queue drain.
type FlushResponse struct {
	Flushed int             `json:"flushed"`
	Stats   collector.Stats `json:"stats"`
}

// HandleFlush synchronously drains the submission queue
func HandleFlush(pipeline Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		flushed := pipeline.Flush()

		c.JSON(http.StatusOK, FlushResponse{
			Flushed: flushed,
			Stats:   pipeline.Stats(),
		})
	}
}
