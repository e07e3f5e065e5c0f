package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ticketing-notifier/internal/handler/httperr"
	"ticketing-notifier/internal/infra/realtime"
	"ticketing-notifier/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// NotificationFeed opens the per-user real-time channel.
type NotificationFeed interface {
	ChannelKeyForUser(userID int64) string
	Subscribe(ctx context.Context, channelKey string) (*realtime.Subscription, error)
}

type RealtimeHandler struct {
	feed     NotificationFeed
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewRealtimeHandler(feed NotificationFeed, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks are left to the CORS layer and the gateway in front of this service.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// @Summary Subscribe to notifications
// @Description Upgrade to a websocket that relays every broadcast published on the caller's private channel.
// @Tags realtime
// @Param X-User-ID header int true "Recipient user ID"
// @Success 101
// @Failure 400 {object} httperr.Response
// @Router /ws/notifications [get]
func (h *RealtimeHandler) Subscribe(c *gin.Context) {
	userID, err := userIDFrom(c)
	if err != nil {
		httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeInvalidRequest, "Missing or invalid user id", nil))
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	channel := h.feed.ChannelKeyForUser(userID)
	sub, err := h.feed.Subscribe(ctx, channel)
	if err != nil {
		httperr.AbortWithError(c, err, httperr.New(http.StatusServiceUnavailable, httperr.CodeUnavailable, "Realtime channel unavailable", nil))
		return
	}
	defer func() { _ = sub.Close() }()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", slog.Int64("user_id", userID), slog.Any("error", err))
		return
	}
	defer conn.Close()

	logger := h.logger.With(slog.Int64("user_id", userID), slog.String("channel", channel))
	logger.Info("realtime client connected")

	go h.readPump(conn, cancel)
	h.writePump(ctx, conn, sub.Frames(), logger)

	logger.Info("realtime client disconnected")
}

// readPump discards client frames and cancels the relay once the peer goes away.
func (h *RealtimeHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *RealtimeHandler) writePump(ctx context.Context, conn *websocket.Conn, frames <-chan []byte, logger *slog.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				logger.Debug("realtime write failed", slog.Any("error", err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func userIDFrom(c *gin.Context) (int64, error) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		// Browsers cannot set headers on the upgrade request.
		raw = c.Query("user_id")
	}
	if raw == "" {
		return 0, errs.New("user id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Newf("invalid user id %q", raw)
	}
	return id, nil
}
