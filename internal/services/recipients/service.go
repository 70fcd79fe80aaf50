package recipients

import (
	"context"

	"github.com/rs/zerolog/log"

	"realert-server/internal/models"
	"realert-server/internal/phone"
)

// ContactDirectory is the slice of the store the resolver needs
type ContactDirectory interface {
	GetOrganization(ctx context.Context, id string) (models.Organization, error)
	ContactsByOrganization(ctx context.Context, orgID string) ([]models.Contact, error)
}

// Resolver turns an organization id into the deduplicated, normalized
// list of notification targets.
type Resolver struct {
	directory     ContactDirectory
	defaultPrefix string
}

// NewResolver creates a resolver backed by the given directory
func NewResolver(directory ContactDirectory, defaultPrefix string) *Resolver {
	return &Resolver{
		directory:     directory,
		defaultPrefix: defaultPrefix,
	}
}

// Resolve returns one dialable number per unique target across the
// organization's primary and emergency phones. An organization with no
// contacts yields an empty list, not an error; an unknown organization
// id is store.ErrNotFound. Numbers that fail normalization are skipped.
func (r *Resolver) Resolve(ctx context.Context, orgID string) ([]string, error) {
	if _, err := r.directory.GetOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	contacts, err := r.directory.ContactsByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	numbers := []string{}
	seen := make(map[string]bool)
	for _, c := range contacts {
		for _, raw := range []string{c.PhoneNumber, c.EmergencyPhone} {
			normalized, err := phone.Normalize(raw, r.defaultPrefix)
			if err != nil {
				log.Warn().
					Str("organization_id", orgID).
					Str("contact_id", c.ID).
					Str("number", raw).
					Msg("Skipping contact number that is not dialable")
				continue
			}
			if seen[normalized] {
				continue
			}
			seen[normalized] = true
			numbers = append(numbers, normalized)
		}
	}

	return numbers, nil
}
