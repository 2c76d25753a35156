package amqp

import (
	"encoding/json"
	"time"

	"carteira/internal/events"
)

// ChangeMessage is the broker payload for a committed write. It carries only
// identifiers: consumers fetch the current state through the API.
type ChangeMessage struct {
	UserID    string    `json:"user_id"`
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChangeMessage converts a bus change into a broker message.
func NewChangeMessage(c events.Change) *ChangeMessage {
	return &ChangeMessage{
		UserID:    c.UserID,
		Entity:    string(c.Entity),
		Action:    string(c.Action),
		ID:        c.ID,
		Timestamp: c.At,
	}
}

// RoutingKey is records.<entity>.<action>, so consumers can bind with
// patterns like records.transaction.* on the topic exchange.
func (m *ChangeMessage) RoutingKey() string {
	return "records." + m.Entity + "." + m.Action
}

// ToJSON converts the message to JSON bytes.
func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ChangeMessageFromJSON decodes a message body.
func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
