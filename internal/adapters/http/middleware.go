package http

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Siddhartha1011/AI-Astrologer/internal/metrics"
)

const (
	headerRequestID = "X-Request-Id"
	ctxRequestID    = "request_id"
)

// RequestIDMiddleware ensures every request has a unique X-Request-Id.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			c.Set(ctxRequestID, id)
			return next(c)
		}
	}
}

// LoggingMiddleware logs each request with structured fields and records
// request metrics. Errors are handed to echo's error handler first so the
// final status is what gets logged.
func LoggingMiddleware(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			metrics.HTTPRequests.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(route).Observe(latency.Seconds())

			logger.Info("request",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", status),
				zap.Int64("latency_ms", latency.Milliseconds()),
			)
			return nil
		}
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get(ctxRequestID).(string)
	return id
}
