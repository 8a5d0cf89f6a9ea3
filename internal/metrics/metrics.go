// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pharmatrace"

var (
	contractCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contract_calls_total",
		Help:      "Registry contract calls by method and outcome.",
	}, []string{"method", "outcome"})

	contractLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "contract_call_seconds",
		Help:      "Registry contract call latency, including confirmation wait for writes.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"method"})

	pinUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pin_uploads_total",
		Help:      "Metadata pinning uploads by outcome.",
	}, []string{"outcome"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registration_transitions_total",
		Help:      "Registration workflow transitions.",
	}, []string{"transition"})
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveContractCall records one contract call that started at start.
func ObserveContractCall(method string, start time.Time, err error) {
	contractCalls.WithLabelValues(method, outcome(err)).Inc()
	contractLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// ObservePin records one pinning upload.
func ObservePin(err error) {
	pinUploads.WithLabelValues(outcome(err)).Inc()
}

// ObserveTransition records a registration workflow transition (signup, approve, reject).
func ObserveTransition(transition string) {
	registrations.WithLabelValues(transition).Inc()
}
