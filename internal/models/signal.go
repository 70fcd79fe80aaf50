package models

import (
	"time"
)

// SignalKind represents the detector modality that produced a signal
type SignalKind string

const (
	SignalKindCamera SignalKind = "camera"
	SignalKindAudio  SignalKind = "audio"
)

// String returns the string representation of SignalKind
func (k SignalKind) String() string {
	return string(k)
}

// IsValid checks if the signal kind is recognized
func (k SignalKind) IsValid() bool {
	switch k {
	case SignalKindCamera, SignalKindAudio:
		return true
	default:
		return false
	}
}

// DetectionSignal is a transient threat report from a single detector.
// It is not persisted as such; accepted signals become Events.
type DetectionSignal struct {
	RoomCode       string     `json:"room_code"`
	Kind           SignalKind `json:"kind"`
	OrganizationID string     `json:"organization_id"`
	ReceivedAt     time.Time  `json:"received_at"`
}
