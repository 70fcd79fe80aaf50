package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"realert-server/internal/models"
)

// AppendEvent persists an accepted event. Events are append-only;
// callers must have passed admission before appending.
func (s *Store) AppendEvent(ctx context.Context, e models.Event) (models.Event, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.Timestamp = e.Timestamp.UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO events (id, room_code, kind, timestamp, organization_id) VALUES (?, ?, ?, ?, ?)",
		e.ID, e.RoomCode, e.Kind, e.Timestamp, e.OrganizationID)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to append event: %w", err)
	}

	return e, nil
}

// LatestEventByRoom returns the most recent event for a room code
func (s *Store) LatestEventByRoom(ctx context.Context, roomCode string) (models.Event, error) {
	var e models.Event
	err := s.db.GetContext(ctx, &e,
		"SELECT id, room_code, kind, timestamp, organization_id FROM events WHERE room_code = ? ORDER BY timestamp DESC LIMIT 1",
		roomCode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to query latest event: %w", err)
	}
	return e, nil
}

// LatestEventByOrganization returns the most recent event for an organization
func (s *Store) LatestEventByOrganization(ctx context.Context, orgID string) (models.Event, error) {
	var e models.Event
	err := s.db.GetContext(ctx, &e,
		"SELECT id, room_code, kind, timestamp, organization_id FROM events WHERE organization_id = ? ORDER BY timestamp DESC LIMIT 1",
		orgID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to query latest event: %w", err)
	}
	return e, nil
}

// DeleteEvents removes every event. Administrative bulk clear.
func (s *Store) DeleteEvents(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	return nil
}
