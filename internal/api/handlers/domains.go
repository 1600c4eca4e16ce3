package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zuup-ai/zuup-collect/internal/prompts"
	"github.com/zuup-ai/zuup-collect/internal/taxonomy"
)

// HandleDomains returns the full domain registry
func HandleDomains() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"domains": taxonomy.All(),
			"count":   len(taxonomy.IDs()),
		})
	}
}

// HandleDomainByID returns a single domain definition, 404 when unknown
func HandleDomainByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		domain := taxonomy.Get(id)
		if domain == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "unknown domain: " + id,
			})
			return
		}
		c.JSON(http.StatusOK, domain)
	}
}

// HandleDomainPrompts returns the seed prompt library for a domain. The
// optional "topic" query parameter limits results to one topic.
func HandleDomainPrompts() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if taxonomy.Get(id) == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "unknown domain: " + id,
			})
			return
		}

		all := prompts.All(id)
		if topic := c.Query("topic"); topic != "" {
			var filtered []prompts.SeedPrompt
			for _, p := range all {
				if p.Category == topic {
					filtered = append(filtered, p)
				}
			}
			all = filtered
		}

		c.JSON(http.StatusOK, gin.H{
			"domain":  id,
			"topics":  prompts.Topics(id),
			"prompts": all,
		})
	}
}
