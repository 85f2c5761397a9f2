package infrastructure

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector_ToolCalls(t *testing.T) {
	collector := NewPrometheusMetricsCollector(nil)
	ctx := context.Background()

	collector.RecordToolCall(ctx, "resolve_location", "success", 120*time.Millisecond)
	collector.RecordToolCall(ctx, "resolve_location", "success", 80*time.Millisecond)
	collector.RecordToolCall(ctx, "get_weather_forecast", "UPSTREAM_HTTP_ERROR", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.toolCalls.WithLabelValues("resolve_location", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.toolCalls.WithLabelValues("get_weather_forecast", "UPSTREAM_HTTP_ERROR")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.toolCallDuration))
}

func TestPrometheusMetricsCollector_RunsAndUpstreams(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheusMetricsCollector(reg)
	ctx := context.Background()

	collector.RecordRun(ctx, "completed", 2)
	collector.RecordRun(ctx, "MAX_TURNS_EXCEEDED_ERROR", 10)
	collector.RecordUpstreamCall(ctx, "geocoding", "success")
	collector.RecordUpstreamCall(ctx, "daily", "TIMEOUT_ERROR")

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runs.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.runs.WithLabelValues("MAX_TURNS_EXCEEDED_ERROR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.upstreamRequests.WithLabelValues("daily", "TIMEOUT_ERROR")))

	count, err := testutil.GatherAndCount(reg, "weather_agent_run_turns")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetricsCollector_Handler(t *testing.T) {
	collector := NewPrometheusMetricsCollector(nil)
	collector.RecordToolCall(context.Background(), "get_current_weather", "success", time.Millisecond)

	server := httptest.NewServer(collector.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `weather_agent_tool_calls_total{outcome="success",tool="get_current_weather"} 1`)
}
