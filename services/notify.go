package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/olahol/melody"
)

var notifier *melody.Melody

// InitNotifier wires the admin websocket hub into the services layer
func InitNotifier(m *melody.Melody) {
	notifier = m
}

// AdminEvent is one message on the admin event stream
type AdminEvent struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// BroadcastAdminEvent pushes an event to every connected admin session.
// Best-effort: a missing hub or marshal failure only logs.
func BroadcastAdminEvent(eventType string, payload interface{}) {
	if notifier == nil {
		return
	}

	event := AdminEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal admin event %q: %v", eventType, err)
		return
	}

	if err := notifier.Broadcast(msg); err != nil {
		log.Printf("Failed to broadcast admin event %q: %v", eventType, err)
	}
}
