package debate

import (
	"encoding/json"
	"time"
)

// Event types broadcast to a debate room.
const (
	EventNewQuestion       = "newQuestion"
	EventSuggestedQuestion = "suggestedQuestion"
	EventReaction          = "reaction"
	EventPresence          = "presence"
)

// Event is a broadcast envelope delivered to every participant of a debate.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp int64           `json:"timestamp"`
}

// Publisher delivers events to everyone attached to a debate. The hub in the
// websocket package implements it. Debates call Publish only after the
// corresponding state mutation has committed, and never reorder events
// relative to other events of the same debate.
type Publisher interface {
	Publish(debateID string, event *Event)
}

// ReactionPayload is an audience reaction relayed through the room.
type ReactionPayload struct {
	Reaction  string `json:"reaction"`
	Timestamp int64  `json:"timestamp"`
}

// PresencePayload carries the connected participant count of a room.
type PresencePayload struct {
	Connected int `json:"connected"`
}

// NewEvent wraps a payload into a timestamped event.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		Type:      eventType,
		Payload:   payloadBytes,
		Timestamp: time.Now().Unix(),
	}, nil
}
