package models

import (
	"time"
)

// Organization owns contacts, sensors and events
type Organization struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Contact is a registered notification target. A contact is unique per
// primary phone number within the directory.
type Contact struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	PhoneNumber    string    `json:"phone_number" db:"phone_number"`
	EmergencyPhone string    `json:"emergency_phone" db:"emergency_phone"`
	OrganizationID string    `json:"organization_id" db:"organization_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Sensor is a camera or audio endpoint watching a room
type Sensor struct {
	ID             string     `json:"id" db:"id"`
	OrganizationID string     `json:"organization_id" db:"organization_id"`
	RoomCode       string     `json:"room_code" db:"room_code"`
	Kind           SignalKind `json:"kind" db:"kind"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// Event is an accepted detection signal. Events are append-only and
// never mutated; for any room code two events are always separated by
// at least the debounce window.
type Event struct {
	ID             string     `json:"id" db:"id"`
	RoomCode       string     `json:"room_code" db:"room_code"`
	Kind           SignalKind `json:"kind" db:"kind"`
	Timestamp      time.Time  `json:"timestamp" db:"timestamp"`
	OrganizationID string     `json:"organization_id" db:"organization_id"`
}
