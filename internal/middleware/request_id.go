package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meetbot/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or mints one, and stores it
// in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Metrics records request counts and latency. A no-op without a collector.
func (m Middleware) Metrics() gin.HandlerFunc {
	if m.metrics == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return m.metrics.Middleware()
}
