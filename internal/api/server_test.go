package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"realert-server/internal/config"
	"realert-server/internal/obs"
	"realert-server/internal/services"
	"realert-server/internal/services/debounce"
	"realert-server/internal/services/dispatch"
	"realert-server/internal/services/intake"
	"realert-server/internal/services/recipients"
	"realert-server/internal/sms"
	"realert-server/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		ServerID:             "test-1",
		Version:              "test",
		Port:                 0,
		DebounceWindow:       5 * time.Second,
		DefaultCountryPrefix: "+1",
		DispatchWorkers:      2,
		SMSSendTimeout:       time.Second,
		DispatchDeadline:     2 * time.Second,
		AlertsSubject:        "alerts.events",
		IntakeRatePerSec:     1000,
		IntakeBurst:          1000,
	}

	st, err := store.Open(context.Background(), filepath.Join(t.TempDir(), "realert.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	gate := debounce.NewGate(cfg.DebounceWindow)
	resolver := recipients.NewResolver(st, cfg.DefaultCountryPrefix)
	dispatcher := dispatch.NewDispatcher(sms.Nop{}, cfg.DispatchWorkers, cfg.SMSSendTimeout)
	intakeSvc := intake.NewService(gate, st, resolver, dispatcher, nil, cfg.AlertsSubject, cfg.DispatchDeadline)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		intakeSvc.Shutdown(ctx)
	})

	obs.Init()

	srv := NewServer(cfg, &services.ServiceContainer{
		Config: cfg,
		Store:  st,
		Intake: intakeSvc,
	})
	if err := srv.Setup(); err != nil {
		t.Fatalf("setup server: %v", err)
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func createOrganization(t *testing.T, srv *Server, name string) string {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/organizations", map[string]string{"name": name})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create organization: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	return decodeBody(t, rec)["id"].(string)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: got %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["status"]; got != "healthy" {
		t.Errorf("health status = %v, want healthy", got)
	}

	rec = doJSON(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("service info: got %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["server_id"]; got != "test-1" {
		t.Errorf("server_id = %v, want test-1", got)
	}
}

func TestContactRegistrationIdempotent(t *testing.T) {
	srv := newTestServer(t)
	orgID := createOrganization(t, srv, "Lincoln High")

	contact := map[string]string{
		"name":            "Dana Reed",
		"phone_number":    "5550001111",
		"emergency_phone": "5550002222",
		"organization_id": orgID,
	}

	rec := doJSON(t, srv, http.MethodPost, "/contacts", contact)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first registration: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	firstID := decodeBody(t, rec)["id"]

	rec = doJSON(t, srv, http.MethodPost, "/contacts", contact)
	if rec.Code != http.StatusOK {
		t.Fatalf("re-registration: got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["id"]; got != firstID {
		t.Errorf("re-registration returned id %v, want existing %v", got, firstID)
	}

	rec = doJSON(t, srv, http.MethodPost, "/contacts", map[string]string{
		"name":            "Nobody",
		"phone_number":    "5550009999",
		"emergency_phone": "5550008888",
		"organization_id": "does-not-exist",
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown organization: got %d, want 404", rec.Code)
	}
}

func TestSensorRegistration(t *testing.T) {
	srv := newTestServer(t)
	orgID := createOrganization(t, srv, "Lincoln High")

	rec := doJSON(t, srv, http.MethodPost, "/sensors", map[string]string{
		"room_code":       "A113",
		"kind":            "thermal",
		"organization_id": orgID,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid kind: got %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/sensors", map[string]string{
		"room_code":       "A113",
		"kind":            "camera",
		"organization_id": orgID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create sensor: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodGet, "/sensors?organization_id="+orgID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list sensors: got %d, want 200", rec.Code)
	}
}

func TestEventIntakeFlow(t *testing.T) {
	srv := newTestServer(t)
	orgID := createOrganization(t, srv, "Lincoln High")

	signal := map[string]string{
		"room_code":       "A113",
		"kind":            "camera",
		"organization_id": orgID,
	}

	rec := doJSON(t, srv, http.MethodPost, "/events", signal)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first signal: got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "accepted" {
		t.Errorf("first signal status = %v, want accepted", body["status"])
	}
	eventID, _ := body["event_id"].(string)
	if eventID == "" {
		t.Error("accepted response missing event_id")
	}

	// Duplicate inside the debounce window is acknowledged but suppressed.
	rec = doJSON(t, srv, http.MethodPost, "/events", signal)
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate signal: got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["status"]; got != "suppressed" {
		t.Errorf("duplicate signal status = %v, want suppressed", got)
	}

	// Another room is admitted independently.
	rec = doJSON(t, srv, http.MethodPost, "/events", map[string]string{
		"room_code":       "B201",
		"kind":            "audio",
		"organization_id": orgID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("other room: got %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodGet, "/events/latest?organization_id="+orgID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("latest event: got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["room_code"]; got != "B201" {
		t.Errorf("latest event room = %v, want B201", got)
	}

	rec = doJSON(t, srv, http.MethodDelete, "/events", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete events: got %d, want 200", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/events/latest?organization_id="+orgID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("latest after delete: got %d, want 404", rec.Code)
	}
}

func TestReportEventValidation(t *testing.T) {
	srv := newTestServer(t)
	orgID := createOrganization(t, srv, "Lincoln High")

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing room code", map[string]string{"kind": "camera", "organization_id": orgID}},
		{"missing kind", map[string]string{"room_code": "A113", "organization_id": orgID}},
		{"unknown kind", map[string]string{"room_code": "A113", "kind": "seismic", "organization_id": orgID}},
		{"unknown organization", map[string]string{"room_code": "A113", "kind": "camera", "organization_id": "nope"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/events", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("got %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestLatestEventRequiresOrganization(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/events/latest", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing organization_id: got %d, want 400", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/events/latest?organization_id=ghost", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown organization: got %d, want 404", rec.Code)
	}
}
