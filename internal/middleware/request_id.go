// Package middleware provides the HTTP middleware of the camp service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// Context keys set by the middleware chain.
const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	UsernameKey  ContextKey = "username"
	ClaimsKey    ContextKey = "user_claims"
)

// RequestID returns a middleware that gives each request an ID.
// A client supplied X-Request-ID is kept when it is not longer than 128 bytes,
// otherwise a new UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// GetUserID returns the id of the authenticated user, or 0.
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(string(UserIDKey))
}

// GetUsername returns the name of the authenticated user, or "".
func GetUsername(c *gin.Context) string {
	return c.GetString(string(UsernameKey))
}
