package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"autotube/types"
)

// RegisterConfigRoutes registers configuration endpoints.
func (s *Server) RegisterConfigRoutes(r *gin.Engine) {
	g := r.Group("/api/config")
	g.GET("", s.handleGetConfig)
	g.POST("", s.handleSaveConfig)
}

// handleGetConfig returns the current configuration singleton.
func (s *Server) handleGetConfig(c *gin.Context) {
	cfg, err := s.store.Config(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read configuration: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// handleSaveConfig shallow-merges a partial configuration over the
// singleton. Unknown fields are rejected rather than silently merged.
func (s *Server) handleSaveConfig(c *gin.Context) {
	var update types.ConfigUpdate
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid configuration payload: " + err.Error()})
		return
	}

	cfg, err := s.store.MergeConfig(c.Request.Context(), update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save configuration: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration saved successfully!",
		"config":  cfg,
	})
}
