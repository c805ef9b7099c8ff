package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	reconcileRequestsTotal  *prometheus.CounterVec
	reconcileLatencySeconds *prometheus.HistogramVec
	reconcileErrorsTotal    *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used for the
// reconciliation endpoints.
func RegisterMetrics() {
	registerOnce.Do(func() {
		reconcileRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reconcile_requests_total",
			Help: "Total number of reconciliation API requests served.",
		}, []string{"method", "route", "status"})

		reconcileLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "reconcile_latency_seconds",
			Help:    "Latency distribution for reconciliation API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		reconcileErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reconcile_errors_total",
			Help: "Total number of error responses returned by reconciliation endpoints.",
		}, []string{"method", "route", "status"})

		prometheus.MustRegister(reconcileRequestsTotal, reconcileLatencySeconds, reconcileErrorsTotal)
	})
}

// ReconcileRequests exposes the counter for reconciliation requests.
func ReconcileRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return reconcileRequestsTotal
}

// ReconcileLatency exposes the latency histogram for reconciliation requests.
func ReconcileLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return reconcileLatencySeconds
}

// ReconcileErrors exposes the counter for reconciliation error responses.
func ReconcileErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return reconcileErrorsTotal
}
