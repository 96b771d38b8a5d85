package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"autotube/config"
	"autotube/topics"
)

// RegisterTopicRoutes registers the topic suggestion endpoint.
func (s *Server) RegisterTopicRoutes(r *gin.Engine) {
	r.GET("/api/topics", s.handleTopics)
}

// handleTopics suggests video topics from an RSS feed. Query params:
// feed (preset name or URL), count, extract=true to pull full article text.
func (s *Server) handleTopics(c *gin.Context) {
	feedURL := config.ResolveFeedURL(c.DefaultQuery("feed", config.DefaultFeedPreset))

	count := config.DefaultTopicCount
	if v := c.Query("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			count = n
		}
	}

	suggestions, err := topics.Fetch(feedURL, count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch topics: " + err.Error()})
		return
	}

	if c.Query("extract") == "true" {
		topics.ExtractAll(suggestions)
	}

	c.JSON(http.StatusOK, gin.H{
		"feed_url": feedURL,
		"topics":   suggestions,
	})
}
