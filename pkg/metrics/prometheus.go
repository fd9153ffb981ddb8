// Package metrics provides Prometheus metrics for the Snipe-IT MCP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tool call outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Manager manages all Prometheus metrics for the server.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Tool metrics - one MCP tool invocation per observation.
	toolCalls        *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec

	// Upstream metrics - requests issued to the Snipe-IT API.
	upstreamRequests        *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	upstreamErrors          *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "snipemcp",
		subsystem:        "server",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
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

	m.toolCalls = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tool_calls_total",
		Help:      "Total number of MCP tool invocations by tool and outcome",
	}, []string{"tool", "outcome"})

	m.toolCallDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tool_call_duration_ms",
		Help:      "Duration of MCP tool invocations in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"tool"})

	m.upstreamRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests to the Snipe-IT API by operation, method and status",
	}, []string{"op", "method", "status"})

	m.upstreamRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_request_duration_ms",
		Help:      "Duration of Snipe-IT API requests in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"op"})

	m.upstreamErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "upstream_errors_total",
		Help:      "Total number of Snipe-IT API failures by error kind",
	}, []string{"kind"})
}

// RecordToolCall increments the tool call counter.
func (m *Manager) RecordToolCall(tool, outcome string) {
	if !m.enabled {
		return
	}
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// ObserveToolCallDuration records the duration of a tool invocation.
func (m *Manager) ObserveToolCallDuration(tool string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.toolCallDuration.WithLabelValues(tool).Observe(durationMs)
}

// RecordUpstreamRequest increments the upstream request counter.
func (m *Manager) RecordUpstreamRequest(op, method, status string) {
	if !m.enabled {
		return
	}
	m.upstreamRequests.WithLabelValues(op, method, status).Inc()
}

// ObserveUpstreamDuration records the duration of an upstream request.
func (m *Manager) ObserveUpstreamDuration(op string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.upstreamRequestDuration.WithLabelValues(op).Observe(durationMs)
}

// RecordUpstreamError increments the upstream error counter.
func (m *Manager) RecordUpstreamError(kind string) {
	if !m.enabled {
		return
	}
	m.upstreamErrors.WithLabelValues(kind).Inc()
}

// Package-level helpers delegating to the global manager.

// RecordToolCall increments the tool call counter on the global manager.
func RecordToolCall(tool, outcome string) { globalManager.RecordToolCall(tool, outcome) }

// ObserveToolCallDuration records a tool invocation duration on the global manager.
func ObserveToolCallDuration(tool string, durationMs float64) {
	globalManager.ObserveToolCallDuration(tool, durationMs)
}

// RecordUpstreamRequest increments the upstream request counter on the global manager.
func RecordUpstreamRequest(op, method, status string) {
	globalManager.RecordUpstreamRequest(op, method, status)
}

// ObserveUpstreamDuration records an upstream request duration on the global manager.
func ObserveUpstreamDuration(op string, durationMs float64) {
	globalManager.ObserveUpstreamDuration(op, durationMs)
}

// RecordUpstreamError increments the upstream error counter on the global manager.
func RecordUpstreamError(kind string) { globalManager.RecordUpstreamError(kind) }

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry { return customRegistry }
