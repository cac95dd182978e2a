package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// FieldRequestID is the log/header field carrying the request id.
	FieldRequestID = "request_id"
	// FieldUserID is the log field carrying the authenticated user id.
	FieldUserID = "user_id"
	// FieldDuration is the log field for request duration in milliseconds.
	FieldDuration = "duration_ms"

	requestIDHeader = "X-Request-ID"
)

// New builds a slog.Logger writing to w. format is "json" or "text";
// level is one of debug, info, warn, error.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Middleware logs one line per request and tags the request with an id.
func Middleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(FieldRequestID, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		attrs := []slog.Attr{
			slog.String(FieldRequestID, requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Int64(FieldDuration, time.Since(start).Milliseconds()),
		}
		if uid := c.GetString(FieldUserID); uid != "" {
			attrs = append(attrs, slog.String(FieldUserID, uid))
		}
		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}

// FromContext returns logger annotated with the request id stored by Middleware.
func FromContext(c *gin.Context, logger *slog.Logger) *slog.Logger {
	if id := c.GetString(FieldRequestID); id != "" {
		return logger.With(slog.String(FieldRequestID, id))
	}
	return logger
}
