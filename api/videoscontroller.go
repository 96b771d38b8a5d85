package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autotube/types"
)

// RegisterVideoRoutes registers the video list endpoints.
func (s *Server) RegisterVideoRoutes(r *gin.Engine) {
	g := r.Group("/api/videos")
	g.GET("", s.handleListVideos)
	g.POST("", s.handleAddVideo)
}

// handleListVideos returns all stored video records in append order.
func (s *Server) handleListVideos(c *gin.Context) {
	videos, err := s.store.Videos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// handleAddVideo appends a caller-supplied record to the list.
func (s *Server) handleAddVideo(c *gin.Context) {
	var video types.VideoRecord
	if err := c.ShouldBindJSON(&video); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video payload: " + err.Error()})
		return
	}

	if err := s.recordVideo(c.Request.Context(), video, "manual"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add video: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Video added",
		"video":   video,
	})
}
