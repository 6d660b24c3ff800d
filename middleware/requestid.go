package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vnkhanh/product-management/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestID giữ id từ client nếu có, nếu không thì sinh mới
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			c.Request.Header.Set(RequestIDHeader, requestID)
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set(logger.RequestIDKey, requestID)
		c.Next()
	}
}
