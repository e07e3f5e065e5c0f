package notification

import "time"

// Record is a persisted notification. Only ReadAt changes after creation.
type Record struct {
	ID          int64
	RecipientID int64
	Type        Type
	Title       string
	Body        string
	Data        Data
	CreatedAt   time.Time
	ReadAt      *time.Time
}

func (r *Record) IsRead() bool {
	return r.ReadAt != nil
}

type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
