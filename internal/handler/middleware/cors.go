package middleware

import (
	"log/slog"

	"ticketing-notifier/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware also admits the websocket handshake headers the realtime relay needs.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append([]string{RequestIDHeader}, cfg.ExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		AllowWebSockets:  true,
		MaxAge:           cfg.MaxAge,
	}
	corsCfg.AddAllowHeaders(RequestIDHeader, "Sec-WebSocket-Protocol")
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins))
	return cors.New(corsCfg)
}
