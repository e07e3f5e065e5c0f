package middleware

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/usecase/dispatch"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ReminderCatchUp piggybacks the reminder scan on regular traffic. The poll guard keeps it
// to one scan per interval across all instances, and the scan itself runs after the response.
func ReminderCatchUp(guard dispatch.PollGuard, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !websocket.IsWebSocketUpgrade(c.Request) {
			dispatch.Defer(c.Request.Context(), logger, "reminder_catch_up", func(ctx context.Context) error {
				guard.Trigger(ctx)
				return nil
			})
		}
		c.Next()
	}
}
