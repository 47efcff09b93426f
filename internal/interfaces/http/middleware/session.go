// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// Session assigns every browser a session cookie. The cookie keys the
// in-memory cart manager for that visitor; carts exist per session
// whether or not the visitor is logged in.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()

			// Session cookie lives 24 hours, matching the cart TTL
			c.SetCookie(sessionCookie, sessionID, 86400, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionIDFromContext extracts the session id set by Session.
func GetSessionIDFromContext(c *gin.Context) string {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return ""
	}
	return sessionID.(string)
}
