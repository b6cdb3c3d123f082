package websocket

import (
	"encoding/json"

	"github.com/isdelr/passpocket-be/internal/models"
)

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewEventMessage encodes a vault event for broadcast.
func NewEventMessage(event models.VaultEvent) []byte {
	message, _ := json.Marshal(Message{Action: "vault.event", Payload: event})
	return message
}
