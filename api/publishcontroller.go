package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"autotube/youtube"
)

// PublishRequest carries a video identifier and the caller's token bag.
type PublishRequest struct {
	VideoID string        `json:"videoId"`
	Tokens  *oauth2.Token `json:"tokens"`
}

// RegisterPublishRoutes registers the publish endpoint.
func (s *Server) RegisterPublishRoutes(r *gin.Engine) {
	r.POST("/api/publish", s.handlePublish)
}

// handlePublish simulates publishing a video. No upload happens and the
// stored record keeps its status; the returned URL is fabricated.
func (s *Server) handlePublish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload: " + err.Error()})
		return
	}

	url, err := s.publisher.Publish(c.Request.Context(), req.VideoID, req.Tokens)
	if err != nil {
		if errors.Is(err, youtube.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "YouTube authentication required",
				"message": "Please authenticate with YouTube first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to publish video",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Video published successfully!",
		"url":     url,
	})
}
