package middleware

import (
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// CSRFHeaderName carries the anti-forgery token on mutating requests.
	CSRFHeaderName = "X-CSRF-Token"
	// CSRFCookieName is the script-readable cookie the token is issued in.
	CSRFCookieName = "XSRF-TOKEN"
)

// RequireCSRF returns a middleware that verifies the anti-forgery token
// bound to the current session. It must run after RequireAuth, which puts
// the session id on the context. A missing or mismatched token aborts the
// request before any handler validation or storage access.
func RequireCSRF(secret string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(ContextSessionKey)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token validation failed"})
			return
		}

		token := c.GetHeader(CSRFHeaderName)
		if token == "" {
			token = c.PostForm("csrf_token")
		}

		if token == "" || !services.VerifyCSRFToken(token, sessionID, secret) {
			log.WithField("path", c.Request.URL.Path).Warn("Rejected request with missing or mismatched CSRF token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "CSRF token validation failed"})
			return
		}

		c.Next()
	}
}
