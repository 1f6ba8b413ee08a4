package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"ai-life-planner/pkg/response"
)

const (
	headerAPIKey = "X-API-Key"
	headerUserID = "X-User-ID"

	contextUserIDKey = "userID"
)

// Auth validates the static API key and extracts the acting user ID.
// Requests without both headers are rejected before reaching handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(headerAPIKey)
		if m.cfg.Auth.APIKey == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.Auth.APIKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID := c.GetHeader(headerUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by Auth, empty if absent.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}
