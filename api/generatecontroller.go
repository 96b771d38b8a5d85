package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autotube/generator"
)

// GenerateRequest is the payload for a content generation request.
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// RegisterGenerateRoutes registers the content generation endpoint.
func (s *Server) RegisterGenerateRoutes(r *gin.Engine) {
	r.POST("/api/generate", s.handleGenerate)
}

// handleGenerate drafts video metadata for the requested topic and stores
// the resulting record.
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload: " + err.Error()})
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		if errors.Is(err, generator.ErrMissingTopic) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate video",
			"details": err.Error(),
		})
		return
	}

	if err := s.recordVideo(c.Request.Context(), result.Video, string(result.Source)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store video: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Video content generated successfully!",
		"video":   result.Video,
	})
}
