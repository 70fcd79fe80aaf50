package dispatch

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"realert-server/internal/models"
	"realert-server/internal/obs"
	"realert-server/internal/sms"
)

// Dispatcher fans a single alert text out to a set of recipients.
// Every recipient is independent: one failed send never blocks or
// fails the others, and the report always covers the full set.
type Dispatcher struct {
	gateway        sms.Gateway
	workers        int
	perSendTimeout time.Duration
}

// NewDispatcher creates a dispatcher over the given gateway
func NewDispatcher(gateway sms.Gateway, workers int, perSendTimeout time.Duration) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		gateway:        gateway,
		workers:        workers,
		perSendTimeout: perSendTimeout,
	}
}

// Dispatch sends one message per recipient and returns the
// per-recipient outcomes. It never returns an error; failures are
// recorded, counted and terminal for that recipient (no retry).
func (d *Dispatcher) Dispatch(ctx context.Context, recipients []string, body string) models.DispatchReport {
	report := models.DispatchReport{
		Outcomes: make([]models.DispatchOutcome, len(recipients)),
	}
	if len(recipients) == 0 {
		return report
	}

	start := time.Now()

	var g errgroup.Group
	g.SetLimit(d.workers)

	for i, recipient := range recipients {
		i, recipient := i, recipient
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, d.perSendTimeout)
			defer cancel()

			outcome := models.DispatchOutcome{Recipient: recipient}
			if err := d.gateway.Send(sendCtx, recipient, body); err != nil {
				outcome.Err = err.Error()
				obs.SMSSends.WithLabelValues("failure").Inc()
				log.Error().
					Err(err).
					Str("recipient", recipient).
					Msg("Failed to send message")
			} else {
				obs.SMSSends.WithLabelValues("success").Inc()
			}
			report.Outcomes[i] = outcome
			return nil
		})
	}
	g.Wait()

	for _, o := range report.Outcomes {
		if o.Failed() {
			report.Failed++
		} else {
			report.Sent++
		}
	}

	obs.DispatchDuration.Observe(time.Since(start).Seconds())
	log.Info().
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Dur("duration", time.Since(start)).
		Msg("Notification dispatch completed")

	return report
}
