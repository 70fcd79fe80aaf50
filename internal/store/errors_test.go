package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"realert-server/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func TestAppendEventWrapsDriverError(t *testing.T) {
	s, mock := newMockStore(t)

	driverErr := errors.New("database is locked")
	mock.ExpectExec("INSERT INTO events").WillReturnError(driverErr)

	_, err := s.AppendEvent(context.Background(), models.Event{
		RoomCode:       "R1",
		Kind:           models.SignalKindCamera,
		Timestamp:      time.Now(),
		OrganizationID: "S1",
	})
	if !errors.Is(err, driverErr) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLatestEventQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	driverErr := errors.New("disk I/O error")
	mock.ExpectQuery("SELECT (.+) FROM events").WillReturnError(driverErr)

	_, err := s.LatestEventByRoom(context.Background(), "R1")
	if !errors.Is(err, driverErr) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("driver error must not be reported as not-found")
	}
}
