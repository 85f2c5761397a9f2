package infrastructure

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatheragent.app/internal/ports"
)

const metricsNamespace = "weather_agent"

// PrometheusMetricsCollector implements the MetricsCollector port with Prometheus collectors
type PrometheusMetricsCollector struct {
	gatherer prometheus.Gatherer

	toolCalls        *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec
	runs             *prometheus.CounterVec
	runTurns         prometheus.Histogram
	upstreamRequests *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the agent collectors on reg.
// A nil reg gets a fresh registry so several collectors can coexist in tests.
func NewPrometheusMetricsCollector(reg *prometheus.Registry) *PrometheusMetricsCollector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		gatherer: reg,
		toolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "tool_calls_total",
				Help:      "The total number of tool calls by outcome",
			},
			[]string{"tool", "outcome"},
		),
		toolCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "tool_call_duration_seconds",
				Help:      "Tool call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "The total number of agent runs by outcome",
			},
			[]string{"outcome"},
		),
		runTurns: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "run_turns",
				Help:      "Model turns used per agent run",
				Buckets:   []float64{1, 2, 3, 4, 5, 7, 10, 15, 20, 30, 50},
			},
		),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_requests_total",
				Help:      "The total number of upstream API requests by outcome",
			},
			[]string{"upstream", "outcome"},
		),
	}
}

// RecordToolCall counts one tool call and observes its duration
func (m *PrometheusMetricsCollector) RecordToolCall(_ context.Context, tool string, outcome string, duration time.Duration) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordRun counts one finished agent run
func (m *PrometheusMetricsCollector) RecordRun(_ context.Context, outcome string, turns int) {
	m.runs.WithLabelValues(outcome).Inc()
	m.runTurns.Observe(float64(turns))
}

// RecordUpstreamCall counts one request to a weather or geocoding API
func (m *PrometheusMetricsCollector) RecordUpstreamCall(_ context.Context, upstream string, outcome string) {
	m.upstreamRequests.WithLabelValues(upstream, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

var _ ports.MetricsCollector = (*PrometheusMetricsCollector)(nil)
