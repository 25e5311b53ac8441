package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/metrics"
)

// Logging logs every HTTP request and records its latency.
type Logging struct {
	logger  *logger.Logger
	metrics *metrics.Auth
}

// NewLogging creates a new Logging middleware. metrics may be nil.
func NewLogging(logger *logger.Logger, metrics *metrics.Auth) *Logging {
	return &Logging{logger: logger, metrics: metrics}
}

// HandleHTTP logs method, route, status and duration for each request.
func (l *Logging) HandleHTTP(c *gin.Context) {
	start := time.Now()

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}

	l.metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(status), duration.Seconds())

	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"client_ip", c.ClientIP(),
	}
	switch {
	case status >= 500:
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Error())
		}
		l.logger.ErrorContext(c.Request.Context(), "HTTP request failed", args...)
	case status >= 400:
		l.logger.WarnContext(c.Request.Context(), "HTTP request rejected", args...)
	default:
		l.logger.InfoContext(c.Request.Context(), "HTTP request completed", args...)
	}
}
