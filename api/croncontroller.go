package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterCronRoutes registers the automation trigger endpoint, invoked by
// an external scheduler on a fixed cadence.
func (s *Server) RegisterCronRoutes(r *gin.Engine) {
	r.GET("/api/cron", s.handleCron)
}

// handleCron runs one automation cycle: verify the shared secret, check
// whether auto-posting is enabled, then generate a video for the
// configured topic. There is no idempotency key; repeated calls within a
// window produce additional records.
func (s *Server) handleCron(c *gin.Context) {
	if !s.cronAuthorized(c.GetHeader("Authorization")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	cfg, err := s.store.Config(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cron job failed", "details": err.Error()})
		return
	}

	if !cfg.Enabled {
		c.JSON(http.StatusOK, gin.H{"message": "Auto-posting is disabled"})
		return
	}

	result, err := s.generator.Generate(c.Request.Context(), cfg.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cron job failed", "details": err.Error()})
		return
	}

	if err := s.recordVideo(c.Request.Context(), result.Video, string(result.Source)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cron job failed", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cron job executed successfully",
		"video":   result.Video,
	})
}

// cronAuthorized compares the bearer credential against the configured
// secret in constant time. An unset secret disables the endpoint.
func (s *Server) cronAuthorized(authHeader string) bool {
	if s.cronSecret == "" {
		return false
	}
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.cronSecret)) == 1
}
