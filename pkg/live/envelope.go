// Package live pushes engine events to subscribers outside the process:
// browsers over a websocket and other services over Redis pub/sub.
package live

import (
	"encoding/json"
	"time"
)

const (
	TypeEvent = "event"
	TypePing  = "ping"
	TypePong  = "pong"
	TypeError = "error"
)

// Message is the wire envelope shared by the websocket hub and the Redis
// mirror.
type Message struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Event     string `json:"event,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Payload   any    `json:"payload,omitempty"`
}

func encodeEvent(event string, payload any, now time.Time) ([]byte, error) {
	return json.Marshal(Message{
		Type:      TypeEvent,
		Event:     event,
		Timestamp: now.UTC().Format(time.RFC3339),
		Payload:   payload,
	})
}
