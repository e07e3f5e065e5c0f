package request

import (
	"encoding/json"

	"ticketing-notifier/internal/domain/notification"

	"github.com/google/uuid"
)

type PublishEventRequest struct {
	ID      *uuid.UUID      `json:"id"`
	Type    string          `json:"type" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

func (r *PublishEventRequest) ToDomain() (notification.Event, error) {
	return notification.DecodeEvent(notification.EventKind(r.Type), r.Payload)
}
