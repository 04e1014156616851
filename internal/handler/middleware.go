package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader  = "X-Request-ID"
	loggerContextKey = "__request_logger"
)

// RequestLogger 为每个请求分配 ID，并在上下文中放入带有该 ID 的日志记录器。
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	if base == nil {
		base = slog.Default()
	}

	return func(c *gin.Context) {
		reqID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.NewString()
		}

		logger := base.With(slog.String("request_id", reqID))
		c.Set(loggerContextKey, logger)
		c.Header(requestIDHeader, reqID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

func requestLogger(c *gin.Context) *slog.Logger {
	if cached, exists := c.Get(loggerContextKey); exists {
		if logger, ok := cached.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
