package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// CtxRequestID the context key holding the request ID.
const CtxRequestID = "request_id"

// RequestID assigns each request a correlation ID, honoring one supplied by
// the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
