package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"realert-server/internal/models"
)

// CreateOrganization registers a new organization
func (s *Store) CreateOrganization(ctx context.Context, name string) (models.Organization, error) {
	org := models.Organization{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO organizations (id, name, created_at) VALUES (?, ?, ?)",
		org.ID, org.Name, org.CreatedAt)
	if err != nil {
		return models.Organization{}, fmt.Errorf("failed to insert organization: %w", err)
	}

	return org, nil
}

// GetOrganization looks up an organization by id
func (s *Store) GetOrganization(ctx context.Context, id string) (models.Organization, error) {
	var org models.Organization
	err := s.db.GetContext(ctx, &org,
		"SELECT id, name, created_at FROM organizations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Organization{}, ErrNotFound
	}
	if err != nil {
		return models.Organization{}, fmt.Errorf("failed to query organization: %w", err)
	}
	return org, nil
}

// ListOrganizations returns all registered organizations
func (s *Store) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	orgs := []models.Organization{}
	err := s.db.SelectContext(ctx, &orgs,
		"SELECT id, name, created_at FROM organizations ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	return orgs, nil
}

// CreateContact registers a contact. Registration is idempotent per
// primary phone number: re-registering an existing number returns the
// existing contact unchanged and created=false.
func (s *Store) CreateContact(ctx context.Context, c models.Contact) (models.Contact, bool, error) {
	if _, err := s.GetOrganization(ctx, c.OrganizationID); err != nil {
		return models.Contact{}, false, err
	}

	var out models.Contact
	created := false
	err := s.transact(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &out,
			"SELECT id, name, phone_number, emergency_phone, organization_id, created_at FROM contacts WHERE phone_number = ?",
			c.PhoneNumber)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to query contact: %w", err)
		}

		out = c
		out.ID = uuid.New().String()
		out.CreatedAt = time.Now().UTC()
		_, err = tx.ExecContext(ctx,
			"INSERT INTO contacts (id, name, phone_number, emergency_phone, organization_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			out.ID, out.Name, out.PhoneNumber, out.EmergencyPhone, out.OrganizationID, out.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return models.Contact{}, false, err
	}
	return out, created, nil
}

// ContactsByOrganization returns every contact registered for an organization
func (s *Store) ContactsByOrganization(ctx context.Context, orgID string) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := s.db.SelectContext(ctx, &contacts,
		"SELECT id, name, phone_number, emergency_phone, organization_id, created_at FROM contacts WHERE organization_id = ? ORDER BY created_at",
		orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// ListContacts returns all contacts across organizations
func (s *Store) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	err := s.db.SelectContext(ctx, &contacts,
		"SELECT id, name, phone_number, emergency_phone, organization_id, created_at FROM contacts ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// DeleteContacts removes every contact. Administrative bulk clear.
func (s *Store) DeleteContacts(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("failed to delete contacts: %w", err)
	}
	return nil
}

// CreateSensor registers a camera or audio endpoint for a room
func (s *Store) CreateSensor(ctx context.Context, sensor models.Sensor) (models.Sensor, error) {
	if _, err := s.GetOrganization(ctx, sensor.OrganizationID); err != nil {
		return models.Sensor{}, err
	}

	sensor.ID = uuid.New().String()
	sensor.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sensors (id, organization_id, room_code, kind, created_at) VALUES (?, ?, ?, ?, ?)",
		sensor.ID, sensor.OrganizationID, sensor.RoomCode, sensor.Kind, sensor.CreatedAt)
	if err != nil {
		return models.Sensor{}, fmt.Errorf("failed to insert sensor: %w", err)
	}

	return sensor, nil
}

// SensorsByOrganization returns every sensor registered for an organization
func (s *Store) SensorsByOrganization(ctx context.Context, orgID string) ([]models.Sensor, error) {
	sensors := []models.Sensor{}
	err := s.db.SelectContext(ctx, &sensors,
		"SELECT id, organization_id, room_code, kind, created_at FROM sensors WHERE organization_id = ? ORDER BY created_at",
		orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	return sensors, nil
}
