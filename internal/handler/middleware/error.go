package middleware

import (
	"log/slog"
	"net/http"

	"ticketing-notifier/internal/handler/httperr"
	"ticketing-notifier/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var internalError = httperr.New(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error", nil)

// ErrorHandler logs the error behind each aborted request and fills in a body when the handler wrote none.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			last := c.Errors.Last()
			level := slog.LevelWarn
			if c.Writer.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request.Context(), level, "request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.FullPath()),
				slog.Any("error", last.Err),
			)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(internalError.Status, internalError)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err := errs.FromPanic(r)
				logger.Error("recovered from panic",
					slog.String("request_id", GetRequestID(c)),
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", err),
					slog.Any("stack", errs.ExtractStackLines(err, 12)),
				)
				c.AbortWithStatusJSON(internalError.Status, internalError)
			}
		}()
		c.Next()
	}
}
