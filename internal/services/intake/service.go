package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"realert-server/internal/models"
	"realert-server/internal/obs"
	"realert-server/internal/services/debounce"
	"realert-server/internal/store"
)

// Validation errors, surfaced before any state change
var (
	ErrEmptyRoomCode       = errors.New("room code is required")
	ErrUnknownSignalKind   = errors.New("unknown signal kind")
	ErrUnknownOrganization = errors.New("unknown organization")
)

// EventLog is the slice of the store the intake path needs
type EventLog interface {
	GetOrganization(ctx context.Context, id string) (models.Organization, error)
	AppendEvent(ctx context.Context, e models.Event) (models.Event, error)
}

// RecipientResolver resolves an organization to notification targets
type RecipientResolver interface {
	Resolve(ctx context.Context, orgID string) ([]string, error)
}

// NotificationDispatcher fans an alert out to a set of recipients
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, recipients []string, body string) models.DispatchReport
}

// Result is the outcome of reporting a detection signal
type Result struct {
	Accepted bool
	EventID  string
}

// Service is the orchestrator of the alert intake path: validate,
// gate, persist, then notify. Safe for arbitrary concurrent use;
// only the per-room gate state is mutually excluded.
type Service struct {
	gate       *debounce.Gate
	eventLog   EventLog
	resolver   RecipientResolver
	dispatcher NotificationDispatcher

	publisher models.MessagePublisher
	subject   string

	dispatchDeadline time.Duration
	dispatchWG       sync.WaitGroup
}

// NewService wires the intake path. publisher may be nil when no live
// feed is configured.
func NewService(gate *debounce.Gate, eventLog EventLog, resolver RecipientResolver, dispatcher NotificationDispatcher, publisher models.MessagePublisher, subject string, dispatchDeadline time.Duration) *Service {
	return &Service{
		gate:             gate,
		eventLog:         eventLog,
		resolver:         resolver,
		dispatcher:       dispatcher,
		publisher:        publisher,
		subject:          subject,
		dispatchDeadline: dispatchDeadline,
	}
}

// ReportEvent decides whether a detection signal becomes a real alert.
// Accepted signals are persisted exactly once and the notification
// fan-out is started in the background; the call returns as soon as
// the event is durably logged and dispatch has been initiated.
// Suppressed signals have no side effects at all.
func (s *Service) ReportEvent(ctx context.Context, signal models.DetectionSignal) (Result, error) {
	if signal.RoomCode == "" {
		obs.ValidationFailures.Inc()
		return Result{}, ErrEmptyRoomCode
	}
	if !signal.Kind.IsValid() {
		obs.ValidationFailures.Inc()
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownSignalKind, signal.Kind)
	}

	if _, err := s.eventLog.GetOrganization(ctx, signal.OrganizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			obs.ValidationFailures.Inc()
			return Result{}, fmt.Errorf("%w: %q", ErrUnknownOrganization, signal.OrganizationID)
		}
		return Result{}, fmt.Errorf("failed to verify organization: %w", err)
	}

	now := signal.ReceivedAt
	if now.IsZero() {
		now = time.Now()
	}

	if !s.gate.TryAdmit(signal.RoomCode, now) {
		obs.EventsSuppressed.Inc()
		log.Info().
			Str("room_code", signal.RoomCode).
			Str("kind", signal.Kind.String()).
			Msg("Signal suppressed, another event occurred recently")
		return Result{Accepted: false}, nil
	}

	event, err := s.eventLog.AppendEvent(ctx, models.Event{
		RoomCode:       signal.RoomCode,
		Kind:           signal.Kind,
		Timestamp:      now,
		OrganizationID: signal.OrganizationID,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to persist event: %w", err)
	}

	recipients, err := s.resolver.Resolve(ctx, signal.OrganizationID)
	if err != nil {
		// The event is already durable; a directory failure must not
		// undo the accept decision.
		log.Error().
			Err(err).
			Str("organization_id", signal.OrganizationID).
			Msg("Failed to resolve recipients, notification skipped")
		recipients = nil
	}

	message := models.AlertMessage(event.RoomCode, event.Kind)
	s.publishAlert(event, message)
	s.startDispatch(event, recipients, message)

	obs.EventsAccepted.Inc()
	log.Info().
		Str("event_id", event.ID).
		Str("room_code", event.RoomCode).
		Str("kind", event.Kind.String()).
		Int("recipients", len(recipients)).
		Msg("Event accepted")

	return Result{Accepted: true, EventID: event.ID}, nil
}

// publishAlert pushes the accepted event to the live alert feed.
// Best effort: feed failures never affect the accepted event.
func (s *Service) publishAlert(event models.Event, message string) {
	if s.publisher == nil {
		return
	}
	payload := models.AlertPayload{
		Event:       event,
		Message:     message,
		PublishedAt: time.Now(),
	}
	if err := s.publisher.Publish(s.subject, payload); err != nil {
		log.Warn().Err(err).Str("event_id", event.ID).Msg("Failed to publish alert to live feed")
	}
}

// startDispatch fires the notification fan-out in the background with
// its own deadline, detached from the request lifetime.
func (s *Service) startDispatch(event models.Event, recipients []string, message string) {
	if len(recipients) == 0 {
		return
	}

	s.dispatchWG.Add(1)
	go func() {
		defer s.dispatchWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.dispatchDeadline)
		defer cancel()

		report := s.dispatcher.Dispatch(ctx, recipients, message)
		if report.Failed > 0 {
			log.Warn().
				Str("event_id", event.ID).
				Int("sent", report.Sent).
				Int("failed", report.Failed).
				Msg("Notification dispatch completed with failures")
		}
	}()
}

// Shutdown waits for in-flight notification dispatches to finish
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.dispatchWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
