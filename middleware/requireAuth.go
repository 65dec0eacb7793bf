package middleware

import (
	"fmt"
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/models"
	"github.com/ameerhamza-malik/ItemManagement/services"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// AuthCookieName is the session cookie holding the signed token.
	AuthCookieName = "session"

	// Context keys set by RequireAuth for downstream handlers.
	ContextUserKey    = "user"
	ContextSessionKey = "session_id"
)

// RequireAuth returns a middleware that resolves the session cookie into a
// user and aborts with 401 when the session is absent, invalid or expired.
// No handler body runs in that case. Resolved users go through a small
// read-through cache to skip the lookup on repeat requests.
func RequireAuth(db *gorm.DB, secret string, userCache *cache.Cache, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AuthCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please log in to access this page"})
			return
		}

		claims, err := services.ParseSessionToken(tokenString, secret)
		if err != nil {
			log.WithError(err).Warn("Rejected session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(ContextSessionKey, claims.SessionID)

		cacheKey := fmt.Sprintf("user:%d", claims.UserID)

		// Check cache first
		if cached, found := userCache.Get(cacheKey); found {
			if user, ok := cached.(models.User); ok {
				c.Set(ContextUserKey, user)
				c.Next()
				return
			}
		}

		// Cache miss: fetch from DB
		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		userCache.Set(cacheKey, user, cache.DefaultExpiration)

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
