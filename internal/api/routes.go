package api

import (
	"github.com/gin-gonic/gin"
)

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// API version prefix
	v1 := router.Group("/api/v1")

	// Health check endpoint (unauthenticated so probes work without a key)
	v1.GET("/health", s.handleHealth)

	// Pipeline endpoints
	pipeline := v1.Group("")
	pipeline.Use(s.authMiddleware())
	{
		pipeline.POST("/preferences", s.handleSubmit)
		pipeline.POST("/flush", s.handleFlush)
		pipeline.GET("/stats", s.handleStats)
		pipeline.GET("/runtime", s.handleRuntime)
		pipeline.POST("/pairs", s.handleGeneratePair)
	}

	// Domain registry endpoints (read-only taxonomy data)
	domains := v1.Group("/domains")
	{
		domains.GET("", s.handleDomains)
		domains.GET("/:id", s.handleDomainByID)
		domains.GET("/:id/prompts", s.handleDomainPrompts)
	}
}
