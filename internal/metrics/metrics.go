// Package metrics exposes Prometheus collectors for HTTP traffic and the
// credential flow.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth event labels.
const (
	EventRegister = "register"
	EventLogin    = "login"
	EventLogout   = "logout"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics owns a private registry so that several instances (tests, several
// servers in one process) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	// RequestDuration tracks HTTP request duration in seconds by method, route, status.
	RequestDuration *prometheus.HistogramVec
	// RequestTotal counts HTTP requests by method, route, status.
	RequestTotal *prometheus.CounterVec
	// AuthEvents counts registrations, logins and logouts by outcome.
	AuthEvents *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		AuthEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events by outcome",
			},
			[]string{"event", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.RequestDuration,
		m.RequestTotal,
		m.AuthEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordRequest records duration and count for one served request. route is
// the matched route pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.RequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
	m.RequestTotal.WithLabelValues(method, route, status).Inc()
}

// RecordAuth counts one authentication event.
func (m *Metrics) RecordAuth(event string, success bool) {
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	m.AuthEvents.WithLabelValues(event, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
