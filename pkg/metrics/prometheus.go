// Package metrics provides Prometheus metrics for the fairdraw service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Draw metrics
	drawsTotal          prometheus.Counter
	drawFailures        *prometheus.CounterVec
	drawDuration        prometheus.Histogram
	participantsPerDraw prometheus.Histogram

	// Data provider metrics
	providerRequestDuration prometheus.Histogram
	providerErrors          prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fairdraw",
		subsystem:        "draw",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.drawsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draws_total",
		Help:      "Total number of draws completed successfully",
	})

	m.drawFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "draw_failures_total",
			Help:      "Total number of failed draws by error code",
		},
		[]string{"code"},
	)

	m.drawDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draw_duration_milliseconds",
		Help:      "End-to-end draw execution time in milliseconds, including the provider fetch",
		Buckets:   m.histogramBuckets,
	})

	m.participantsPerDraw = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants_per_draw",
		Help:      "Participant count per completed draw",
		Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 1000, 5000, 10000, 100000},
	})

	m.providerRequestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_request_duration_milliseconds",
		Help:      "Data provider fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.providerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "provider_errors_total",
		Help:      "Total number of failed data provider fetches",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// RecordDraw increments the completed draws counter.
func RecordDraw() {
	globalManager.drawsTotal.Inc()
}

// RecordDrawFailure increments the failed draws counter for a stable
// error code.
func RecordDrawFailure(code string) {
	globalManager.drawFailures.WithLabelValues(code).Inc()
}

// ObserveDrawDuration records one draw's execution time in milliseconds.
func ObserveDrawDuration(durationMs float64) {
	globalManager.drawDuration.Observe(durationMs)
}

// ObserveParticipants records the participant count of a completed draw.
func ObserveParticipants(count int) {
	globalManager.participantsPerDraw.Observe(float64(count))
}

// ObserveProviderRequest records one provider fetch latency in milliseconds.
func ObserveProviderRequest(durationMs float64) {
	globalManager.providerRequestDuration.Observe(durationMs)
}

// RecordProviderError increments the failed provider fetch counter.
func RecordProviderError() {
	globalManager.providerErrors.Inc()
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
