package middleware

import (
	"net/http"

	"wheel-promo-api/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// SessionHeader identifies the anonymous wheel session. The storefront
// generates the UUID once per browser and repeats it on every wheel call.
const SessionHeader = "X-Wheel-Session"

const ctxWheelSessionKey = "wheel_session"

// WheelSession resolves the session header into a typed value once per
// request. A malformed header is a client error; an absent one is fine, some
// endpoints work without a session.
func WheelSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SessionHeader)
		if raw == "" {
			c.Next()
			return
		}

		sess, err := session.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid wheel session header",
			})
			c.Abort()
			return
		}

		c.Set(ctxWheelSessionKey, sess)
		c.Next()
	}
}

// GetWheelSession returns the parsed session, zero when the header was absent.
func GetWheelSession(c *gin.Context) session.Context {
	v, exists := c.Get(ctxWheelSessionKey)
	if !exists {
		return session.Context{}
	}
	sess, ok := v.(session.Context)
	if !ok {
		return session.Context{}
	}
	return sess
}
