package notification

import (
	"time"

	"ticketing-notifier/internal/pkg/ptr"
)

// Per-channel renderings of a (Type, Data) pair. All of them are pure.

type MailContent struct {
	Subject string
	Body    string
}

func RenderMail(t Type, d Data) MailContent {
	msg := Format(t, d)
	body := msg.Body
	if url := d.String(KeyActionURL); url != "" {
		body += "\n\nView details: " + url
	}
	return MailContent{Subject: msg.Title, Body: body}
}

// DatabaseContent is what gets persisted as a Record.
type DatabaseContent struct {
	Type  Type
	Title string
	Body  string
	Data  Data
}

func RenderDatabase(t Type, d Data) DatabaseContent {
	msg := Format(t, d)
	return DatabaseContent{Type: t, Title: msg.Title, Body: msg.Body, Data: d}
}

// BroadcastPayload is published on a user's real-time channel.
type BroadcastPayload struct {
	ID        *int64 `json:"id,omitempty"`
	Type      Type   `json:"type"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Data      Data   `json:"data"`
	CreatedAt string `json:"created_at,omitempty"`
}

func RenderBroadcast(t Type, d Data) BroadcastPayload {
	msg := Format(t, d)
	return BroadcastPayload{Type: t, Title: msg.Title, Body: msg.Body, Data: d}
}

// BroadcastFromRecord re-broadcasts a stored record without re-rendering it.
func BroadcastFromRecord(r *Record) BroadcastPayload {
	return BroadcastPayload{
		ID:        ptr.Of(r.ID),
		Type:      r.Type,
		Title:     r.Title,
		Body:      r.Body,
		Data:      r.Data,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
