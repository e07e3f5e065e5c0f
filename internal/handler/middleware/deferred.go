package middleware

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/usecase/dispatch"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type DeferredMiddleware struct {
	logger *slog.Logger
}

func NewDeferredMiddleware(logger *slog.Logger) *DeferredMiddleware {
	return &DeferredMiddleware{logger: logger}
}

// Attach gives every request a task list and runs it once the handler has returned
// and the response has been flushed to the client. Tasks outlive request cancellation.
func (m *DeferredMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		if websocket.IsWebSocketUpgrade(c.Request) {
			c.Next()
			return
		}

		deferred := dispatch.NewDeferred(m.logger)
		c.Request = c.Request.WithContext(dispatch.WithDeferred(c.Request.Context(), deferred))

		c.Next()

		if deferred.Len() == 0 {
			return
		}
		c.Writer.WriteHeaderNow()
		c.Writer.Flush()

		ran := deferred.Drain(context.WithoutCancel(c.Request.Context()))
		m.logger.Debug("deferred tasks finished",
			slog.String("request_id", GetRequestID(c)),
			slog.Int("tasks", ran))
	}
}
