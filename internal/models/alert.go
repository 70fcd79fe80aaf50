package models

import (
	"fmt"
	"time"
)

// AlertMessage builds the outbound notification text for an accepted
// event. The wording is part of the wire contract with deployed
// clients and must not change.
func AlertMessage(roomCode string, kind SignalKind) string {
	return fmt.Sprintf("EMERGENCY ALERT! A gunshot was detected in room %s through %s detection systems.", roomCode, kind)
}

// AlertPayload is published on the alerts subject when an event is accepted
type AlertPayload struct {
	Event       Event     `json:"event"`
	Message     string    `json:"message"`
	PublishedAt time.Time `json:"published_at"`
}

// DispatchOutcome records the delivery result for a single recipient
type DispatchOutcome struct {
	Recipient string `json:"recipient"`
	Err       string `json:"error,omitempty"`
}

// Failed reports whether the send to this recipient failed
func (o DispatchOutcome) Failed() bool {
	return o.Err != ""
}

// DispatchReport summarizes a notification fan-out. A report with
// failures is still a completed dispatch; failed recipients are
// terminal for that event.
type DispatchReport struct {
	Sent     int               `json:"sent"`
	Failed   int               `json:"failed"`
	Outcomes []DispatchOutcome `json:"outcomes"`
}

// MessagePublisher interface for publishing alerts
type MessagePublisher interface {
	Publish(subject string, data interface{}) error
}
