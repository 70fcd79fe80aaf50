package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"realert-server/internal/config"
	"realert-server/internal/models"
	"realert-server/internal/services/debounce"
	"realert-server/internal/services/dispatch"
	"realert-server/internal/services/intake"
	"realert-server/internal/services/messaging"
	"realert-server/internal/services/recipients"
	"realert-server/internal/sms"
	"realert-server/internal/store"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	Config    *config.Config
	Store     *store.Store
	Messaging *messaging.Service
	Intake    *intake.Service
}

// NewServiceContainer creates a new service container
func NewServiceContainer(ctx context.Context, cfg *config.Config) (*ServiceContainer, error) {
	st, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	// The live feed is best effort: a missing NATS server downgrades
	// to SMS-only operation instead of refusing to start.
	var publisher models.MessagePublisher
	msgSvc, err := messaging.NewService(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, live alert feed disabled")
		msgSvc = nil
	} else {
		publisher = msgSvc
	}

	var gateway sms.Gateway
	if cfg.SMSAccountSID != "" {
		gateway = sms.NewTwilio(cfg)
	} else {
		log.Warn().Msg("No SMS credentials configured, outbound messages disabled")
		gateway = sms.Nop{}
	}

	gate := debounce.NewGate(cfg.DebounceWindow)
	resolver := recipients.NewResolver(st, cfg.DefaultCountryPrefix)
	dispatcher := dispatch.NewDispatcher(gateway, cfg.DispatchWorkers, cfg.SMSSendTimeout)
	intakeSvc := intake.NewService(gate, st, resolver, dispatcher, publisher, cfg.AlertsSubject, cfg.DispatchDeadline)

	return &ServiceContainer{
		Config:    cfg,
		Store:     st,
		Messaging: msgSvc,
		Intake:    intakeSvc,
	}, nil
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.Intake != nil {
		if err := sc.Intake.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Timed out waiting for in-flight dispatches")
		}
	}

	if sc.Messaging != nil {
		if err := sc.Messaging.Shutdown(ctx); err != nil {
			return err
		}
	}

	if sc.Store != nil {
		return sc.Store.Close()
	}

	return nil
}
