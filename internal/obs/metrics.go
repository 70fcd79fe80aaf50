package obs

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "realert_events_accepted_total",
		Help: "Detection signals admitted and persisted as events.",
	})

	EventsSuppressed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "realert_events_suppressed_total",
		Help: "Detection signals suppressed by the debounce gate.",
	})

	ValidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "realert_validation_failures_total",
		Help: "Detection signals rejected before any state change.",
	})

	SMSSends = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realert_sms_sends_total",
			Help: "Outbound SMS attempts by outcome.",
		},
		[]string{"outcome"},
	)

	DispatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "realert_dispatch_duration_seconds",
		Help:    "Wall time of a full notification fan-out.",
		Buckets: prometheus.DefBuckets,
	})
)

var registerOnce sync.Once

// Init registers the metrics in the default registry
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(EventsAccepted, EventsSuppressed, ValidationFailures, SMSSends, DispatchDuration)
	})
}

// Handler exposes the Prometheus scrape endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
