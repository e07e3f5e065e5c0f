package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticketing-notifier/internal/handler/api"
	"ticketing-notifier/internal/handler/middleware"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/usecase/dispatch"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	eventHandler *api.EventHandler,
	realtimeHandler *api.RealtimeHandler,
	pollGuard dispatch.PollGuard,
) {
	setupMiddleware(engine, cfg, logger, pollGuard)
	setupRoutes(engine, eventHandler, realtimeHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, pollGuard dispatch.PollGuard) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	// Deferred tasks run after the error handler has produced the final response
	engine.Use(middleware.NewDeferredMiddleware(logger).Attach())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
	engine.Use(middleware.ReminderCatchUp(pollGuard, logger))
}

func setupRoutes(engine *gin.Engine, eventHandler *api.EventHandler, realtimeHandler *api.RealtimeHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/events", Handler: eventHandler.Publish},
		})
	}

	ws := engine.Group("/ws")
	{
		addRoutes(ws, []route{
			{Method: http.MethodGet, Path: "/notifications", Handler: realtimeHandler.Subscribe},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
