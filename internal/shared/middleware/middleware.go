package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeySessionID = "session_id"
)

// RequestID propagates an inbound X-Request-ID or assigns a fresh one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// SessionOptions configures the dashboard session cookie
type SessionOptions struct {
	CookieName string
	MaxAge     int // seconds
	Secure     bool
}

// Session resolves the dashboard session from its cookie, issuing a new
// session ID when the cookie is missing or malformed
func Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(opts.CookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, sessionID, opts.MaxAge, "/", "", opts.Secure, true)
		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session resolved by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}

// GetRequestID returns the request ID assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}
