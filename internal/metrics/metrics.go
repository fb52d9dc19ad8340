package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the storefront's Prometheus collectors.
type Metrics struct {
	// Backend API calls
	APIRequests *prometheus.CounterVec
	APIDuration *prometheus.HistogramVec

	// Login attempts per strategy
	Logins *prometheus.CounterVec

	// Route guard outcomes
	GuardDecisions *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance registered on registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		APIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_api_requests_total",
				Help: "Total number of backend API calls",
			},
			[]string{"family", "status"},
		),
		APIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_api_request_duration_seconds",
				Help:    "Backend API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"family"},
		),
		Logins: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_logins_total",
				Help: "Login attempts by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		GuardDecisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_guard_decisions_total",
				Help: "Route guard classifications",
			},
			[]string{"state"},
		),
	}
}

// NewRegistry creates a fresh registry with metrics registered on it.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	return reg, NewMetrics(reg)
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveAPICall is safe on a nil receiver.
func (m *Metrics) ObserveAPICall(family, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(family, status).Inc()
	m.APIDuration.WithLabelValues(family).Observe(d.Seconds())
}

func (m *Metrics) RecordLogin(strategy, outcome string) {
	if m == nil {
		return
	}
	m.Logins.WithLabelValues(strategy, outcome).Inc()
}

func (m *Metrics) RecordGuard(state string) {
	if m == nil {
		return
	}
	m.GuardDecisions.WithLabelValues(state).Inc()
}
