package logger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vnkhanh/product-management/logger"
)

func TestNew(t *testing.T) {
	c := qt.New(t)

	for _, env := range []string{"development", "production"} {
		l, err := logger.New(&logger.LogConfig{Level: "warn", Environment: env, ServiceName: "test"})
		c.Assert(err, qt.IsNil)
		c.Assert(l.Core().Enabled(zapcore.InfoLevel), qt.IsFalse)
		c.Assert(l.Core().Enabled(zapcore.WarnLevel), qt.IsTrue)
	}
}

func TestFromContextFallback(t *testing.T) {
	c := qt.New(t)

	c.Assert(logger.FromContext(context.Background()), qt.IsNotNil)

	l := zap.NewExample()
	ctx := logger.WithContext(context.Background(), l)
	c.Assert(logger.FromContext(ctx), qt.Equals, l)
}

func TestMiddlewareLogsRequest(t *testing.T) {
	c := qt.New(t)
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set(logger.RequestIDKey, "req-1")
		ctx.Next()
	})
	r.Use(logger.Middleware(zap.New(core)))
	r.GET("/missing", func(ctx *gin.Context) {
		c.Assert(logger.FromGin(ctx), qt.IsNotNil)
		ctx.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	c.Assert(entries, qt.HasLen, 1)
	c.Assert(entries[0].Level, qt.Equals, zapcore.WarnLevel)
	fields := entries[0].ContextMap()
	c.Assert(fields["request_id"], qt.Equals, "req-1")
	c.Assert(fields["status"], qt.Equals, int64(404))
	c.Assert(fields["path"], qt.Equals, "/missing")
}
