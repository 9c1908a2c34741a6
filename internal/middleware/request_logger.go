package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/model"
)

// RequestLogger returns a middleware that logs every request as one JSON line
// and hands the same record to sink for persistence. sink may be nil.
// Requests whose path is listed in skipPaths are neither logged nor persisted.
func RequestLogger(sink LogSink, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := &model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      levelForStatus(c.Writer.Status()).String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			UserID:     GetUserID(c),
			Username:   GetUsername(c),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}

		log.WithLevel(levelForStatus(entry.StatusCode)).
			Str("request_id", entry.RequestID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Int64("user_id", entry.UserID).
			Msg(entry.Message)

		if sink != nil {
			sink.Log(entry)
		}
	}
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
