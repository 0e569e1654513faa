package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petshop_gateway_requests_total",
			Help: "Total number of requests dispatched to the storefront backend.",
		},
		[]string{"endpoint", "outcome"},
	)
	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petshop_gateway_request_duration_seconds",
			Help:    "Duration of storefront backend requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	gatewayRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "petshop_gateway_requests_in_flight",
			Help: "Current number of backend requests being processed.",
		},
	)
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailure  = "failure"
)

// ObserveRequest records one completed backend round trip.
func ObserveRequest(endpoint, outcome string, duration time.Duration) {
	gatewayRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	gatewayRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func RequestStarted() {
	gatewayRequestsInFlight.Inc()
}

func RequestFinished() {
	gatewayRequestsInFlight.Dec()
}
