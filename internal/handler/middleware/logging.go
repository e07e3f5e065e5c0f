package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"ticketing-notifier/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	RequestIDHeader = "X-Request-ID"
	// EventKindKey is set by handlers that accept a domain event so the access line names it.
	EventKindKey = "event_kind"

	requestIDKey = "request_id"
)

// Probe endpoints are logged at debug so scrapes do not drown the access log.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// NewLogger builds the process logger: JSON in release mode, text otherwise, timestamps in the configured zone.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware assigns a request id (reusing the caller's X-Request-ID) and writes one access line per request.
func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		}
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			attrs = append(attrs, slog.String("user_id", userID))
		}
		if kind := c.GetString(EventKindKey); kind != "" {
			attrs = append(attrs, slog.String("event_kind", kind))
		}
		if websocket.IsWebSocketUpgrade(c.Request) {
			attrs = append(attrs, slog.Bool("websocket", true))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		default:
			if _, quiet := quietPaths[c.Request.URL.Path]; quiet {
				level = slog.LevelDebug
			}
		}
		logger.LogAttrs(c.Request.Context(), level, "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
