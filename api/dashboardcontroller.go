package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autotube/web"
)

// RegisterDashboardRoutes serves the embedded single-page dashboard.
func (s *Server) RegisterDashboardRoutes(r *gin.Engine) {
	r.GET("/", s.handleDashboard)
}

func (s *Server) handleDashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.DashboardHTML)
}
