// Package observability holds the Prometheus metrics of the tracker API.
//
// Metrics are exposed on /metrics. All operations are safe for concurrent use.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const metricsNamespace = "exercise_tracker"

// Subsystem for HTTP metrics
const httpSubsystem = "http"

// Metrics holds the counters and histograms recorded by the API.
type Metrics struct {
	// RequestsTotal counts requests by route, method and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures handler latency by route and method.
	RequestDurationSeconds *prometheus.HistogramVec

	// UsersCreatedTotal counts successfully created users.
	UsersCreatedTotal prometheus.Counter

	// ExercisesLoggedTotal counts exercises appended to a log.
	ExercisesLoggedTotal prometheus.Counter
}

// NewMetrics creates all metrics and registers them with reg.
// Panics on duplicate registration, so call it once per registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: httpSubsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),
		UsersCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "users_created_total",
				Help:      "Total number of users created",
			},
		),
		ExercisesLoggedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "exercises_logged_total",
				Help:      "Total number of exercises appended to user logs",
			},
		),
	}
}

// ObserveRequest records one finished request. Nil receivers are a no-op.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDurationSeconds.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// UserCreated increments the user counter.
func (m *Metrics) UserCreated() {
	if m == nil {
		return
	}
	m.UsersCreatedTotal.Inc()
}

// ExerciseLogged increments the exercise counter.
func (m *Metrics) ExerciseLogged() {
	if m == nil {
		return
	}
	m.ExercisesLoggedTotal.Inc()
}
