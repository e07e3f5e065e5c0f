package response

const (
	StatusAccepted  = "accepted"
	StatusDuplicate = "duplicate"
)

type PublishEventResponse struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	ID     string `json:"id,omitempty"`
}
