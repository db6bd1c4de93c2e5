package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	RequestCounter  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	VotesCounter    *prometheus.CounterVec
	WishesServed    *prometheus.CounterVec
}

// Vote outcomes.
const (
	OutcomeRecorded     = "recorded"
	OutcomeAlreadyVoted = "already_voted"
	OutcomeRejected     = "rejected"
	OutcomeFailed       = "failed"
)

// NewMetrics registers the collectors with reg. Passing a fresh registry keeps tests
// independent of the global default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dailywish",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dailywish",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		VotesCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dailywish",
				Name:      "votes_total",
				Help:      "Votes received by choice and outcome",
			},
			[]string{"choice", "outcome"},
		),
		WishesServed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dailywish",
				Name:      "wishes_served_total",
				Help:      "Daily wishes served, split by anonymous and identified callers",
			},
			[]string{"kind"},
		),
	}
}

// RecordVote counts a vote attempt.
func (m *Metrics) RecordVote(choice, outcome string) {
	m.VotesCounter.WithLabelValues(choice, outcome).Inc()
}

// RecordWishServed counts a served wish.
func (m *Metrics) RecordWishServed(anonymous bool) {
	kind := "identified"
	if anonymous {
		kind = "anonymous"
	}
	m.WishesServed.WithLabelValues(kind).Inc()
}
