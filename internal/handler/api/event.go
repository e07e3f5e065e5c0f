package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ticketing-notifier/internal/domain/notification"
	reqdto "ticketing-notifier/internal/handler/dto/request"
	resdto "ticketing-notifier/internal/handler/dto/response"
	"ticketing-notifier/internal/handler/httperr"
	"ticketing-notifier/internal/handler/middleware"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const intakeClaimTTL = 24 * time.Hour

type EventDispatcher interface {
	Dispatch(ctx context.Context, ev notification.Event) error
}

type EventHandler struct {
	dispatcher EventDispatcher
	store      shared.Store
	logger     *slog.Logger
}

func NewEventHandler(dispatcher EventDispatcher, store shared.Store, logger *slog.Logger) *EventHandler {
	return &EventHandler{dispatcher: dispatcher, store: store, logger: logger}
}

// @Summary Publish domain event
// @Description Accept a domain event and fan out the notifications it produces. Work that can wait runs after the response is sent.
// @Tags events
// @Accept json
// @Produce json
// @Param request body reqdto.PublishEventRequest true "Domain event"
// @Success 202 {object} resdto.PublishEventResponse
// @Failure 400 {object} httperr.Response
// @Router /api/events [post]
func (h *EventHandler) Publish(c *gin.Context) {
	var req reqdto.PublishEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeInvalidRequest, "Invalid request", nil))
		return
	}

	ev, err := req.ToDomain()
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrUnknownEventKind):
			httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeUnknownEvent, "Unknown event type", gin.H{"type": req.Type}))
		default:
			httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeInvalidPayload, "Invalid event payload", err.Error()))
		}
		return
	}

	c.Set(middleware.EventKindKey, req.Type)

	ctx := c.Request.Context()
	res := resdto.PublishEventResponse{Status: resdto.StatusAccepted, Type: req.Type}
	if req.ID != nil {
		res.ID = req.ID.String()
		if !h.claim(ctx, res.ID) {
			res.Status = resdto.StatusDuplicate
			c.JSON(http.StatusAccepted, res)
			return
		}
	}

	if err := h.dispatcher.Dispatch(ctx, ev); err != nil {
		if errs.Is(err, errs.ErrUnknownEvent) {
			httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeUnknownEvent, "Unknown event type", gin.H{"type": req.Type}))
			return
		}
		httperr.AbortWithError(c, err, httperr.New(http.StatusInternalServerError, httperr.CodeInternal, "Internal error", nil))
		return
	}

	c.JSON(http.StatusAccepted, res)
}

// claim reports whether this is the first delivery of the event id. A store failure lets the event through.
func (h *EventHandler) claim(ctx context.Context, id string) bool {
	ok, err := h.store.SetNX(ctx, IntakeClaimKey(id), "1", intakeClaimTTL)
	if err != nil {
		h.logger.Warn("event intake claim failed, processing anyway",
			slog.String("event_id", id),
			slog.Any("error", err))
		return true
	}
	return ok
}

func IntakeClaimKey(id string) string {
	return "event_intake:" + id
}
