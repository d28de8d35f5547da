package api

import (
	"alcyxob/exercise-tracker/internal/observability"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys and headers
const (
	ContextRequestIDKey = "requestID"
	HeaderRequestID     = "X-Request-ID"
)

// RequestIDMiddleware tags every request with an ID, reusing the client's
// X-Request-ID when one is sent.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// MetricsMiddleware records request count and latency per matched route.
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// Helper to return a plain-text error response and abort the request
func abortWithText(c *gin.Context, code int, message string) {
	c.String(code, message)
	c.Abort()
}

// requestIDFromContext returns the ID set by RequestIDMiddleware, or "-".
func requestIDFromContext(c *gin.Context) string {
	if id := c.GetString(ContextRequestIDKey); id != "" {
		return id
	}
	return "-"
}
