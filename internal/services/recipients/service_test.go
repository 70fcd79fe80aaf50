package recipients

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"realert-server/internal/models"
	"realert-server/internal/store"
)

type fakeDirectory struct {
	orgs     map[string]models.Organization
	contacts map[string][]models.Contact
}

func (f *fakeDirectory) GetOrganization(_ context.Context, id string) (models.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return models.Organization{}, store.ErrNotFound
	}
	return org, nil
}

func (f *fakeDirectory) ContactsByOrganization(_ context.Context, orgID string) ([]models.Contact, error) {
	return f.contacts[orgID], nil
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		orgs:     map[string]models.Organization{"S1": {ID: "S1", Name: "S1"}},
		contacts: map[string][]models.Contact{},
	}
}

func TestResolveDeduplicatesAcrossContacts(t *testing.T) {
	dir := newFakeDirectory()
	dir.contacts["S1"] = []models.Contact{
		{ID: "c1", PhoneNumber: "5551110001", EmergencyPhone: "5559990000"},
		{ID: "c2", PhoneNumber: "5551110002", EmergencyPhone: "5559990000"},
	}

	r := NewResolver(dir, "+1")
	got, err := r.Resolve(context.Background(), "S1")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"+15551110001", "+15559990000", "+15551110002"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected recipients: %v", got)
	}
}

func TestResolveDeduplicatesPrimaryAgainstEmergency(t *testing.T) {
	dir := newFakeDirectory()
	dir.contacts["S1"] = []models.Contact{
		{ID: "c1", PhoneNumber: "5551110001", EmergencyPhone: "5559990000"},
		{ID: "c2", PhoneNumber: "+15559990000", EmergencyPhone: "5551110003"},
	}

	r := NewResolver(dir, "+1")
	got, err := r.Resolve(context.Background(), "S1")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"+15551110001", "+15559990000", "+15551110003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected recipients: %v", got)
	}
}

func TestResolveEmptyOrganization(t *testing.T) {
	r := NewResolver(newFakeDirectory(), "+1")

	got, err := r.Resolve(context.Background(), "S1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty recipient list, got %v", got)
	}
}

func TestResolveUnknownOrganization(t *testing.T) {
	r := NewResolver(newFakeDirectory(), "+1")

	_, err := r.Resolve(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveSkipsUndialableNumbers(t *testing.T) {
	dir := newFakeDirectory()
	dir.contacts["S1"] = []models.Contact{
		{ID: "c1", PhoneNumber: "5551110001", EmergencyPhone: "not-a-number"},
	}

	r := NewResolver(dir, "+1")
	got, err := r.Resolve(context.Background(), "S1")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"+15551110001"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected recipients: %v", got)
	}
}
