package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	CtxRequestID     = "request_id"
)

// Context keys set by Authenticate.
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// RequestID propagates the caller's request ID, minting one when absent.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderXRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set(CtxRequestID, rid)
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
