// Package metrics exposes the Prometheus instrumentation shared by both
// services. Counters are registered on the default registry and served by
// the /metrics route on each HTTP router.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BidsAdmitted counts bids accepted by the admission engine.
	BidsAdmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_admitted_total",
		Help: "Number of bids accepted by the admission engine.",
	})

	// BidsRejected counts rejected bids by reason.
	BidsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_bids_rejected_total",
		Help: "Number of bids rejected by the admission engine.",
	}, []string{"reason"})

	// EventsPublished counts envelopes handed to the broker, by event type.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_events_published_total",
		Help: "Number of event envelopes published to the bus.",
	}, []string{"event"})

	// EventsProcessed counts consumed envelopes by queue and outcome
	// (ok, retried, dead_letter).
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_events_processed_total",
		Help: "Number of event envelopes processed by consumers.",
	}, []string{"queue", "result"})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
