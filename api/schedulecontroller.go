package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autotube/scheduler"
)

// RegisterScheduleRoutes registers the schedule description endpoint used
// by the dashboard to preview a cron expression.
func (s *Server) RegisterScheduleRoutes(r *gin.Engine) {
	r.GET("/api/schedule/describe", s.handleDescribeSchedule)
}

// handleDescribeSchedule renders a cron expression as an English sentence
// plus the (stubbed) next run time.
func (s *Server) handleDescribeSchedule(c *gin.Context) {
	cron := c.Query("cron")
	desc := scheduler.Describe(cron)

	resp := gin.H{
		"valid":       desc.Valid,
		"description": desc.Text,
	}
	if desc.Valid {
		resp["next_run"] = scheduler.NextRunTime(cron)
	}
	c.JSON(http.StatusOK, resp)
}
