package logger

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey = "logger"
	// RequestIDKey là khoá gin context chứa request id
	RequestIDKey = "request_id"

	ctxLoggerKey contextKey = "logger"
)

// FromContext retrieves the logger from the context, falling back to a no-op
// logger when none was attached.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey, logger)
}

// FromGin retrieves the logger from the gin context
func FromGin(c *gin.Context) *zap.Logger {
	if logger, ok := c.Get(loggerKey); ok {
		if l, ok := logger.(*zap.Logger); ok {
			return l
		}
	}
	return FromContext(c.Request.Context())
}
