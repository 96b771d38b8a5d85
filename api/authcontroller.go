package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const callbackHTML = `<html>
  <body>
    <h1>YouTube Authentication Successful!</h1>
    <p>You can close this window and return to the application.</p>
    <script>
      setTimeout(() => {
        window.close();
      }, 3000);
    </script>
  </body>
</html>`

// RegisterAuthRoutes registers the YouTube OAuth endpoints.
func (s *Server) RegisterAuthRoutes(r *gin.Engine) {
	g := r.Group("/api/auth/youtube")
	g.GET("", s.handleAuthRedirect)
	g.GET("/callback", s.handleAuthCallback)
}

// handleAuthRedirect sends the user agent to Google's consent screen.
func (s *Server) handleAuthRedirect(c *gin.Context) {
	authURL, err := s.auth.AuthURL()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to initiate YouTube authentication",
			"message": "Please set up YouTube API credentials in your environment variables",
		})
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// handleAuthCallback exchanges the authorization code for a token bag and
// confirms with a self-closing HTML page. The tokens are not persisted;
// they exist only within this request.
func (s *Server) handleAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No authorization code provided"})
		return
	}

	if _, err := s.auth.Exchange(c.Request.Context(), code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to authenticate",
			"details": err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(callbackHTML))
}
