package infrastructure

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"weatheragent.app/internal/ports"
)

const sessionProbeKey = "health:probe"

// SessionStoreHealthChecker round-trips a probe key through the session store
type SessionStoreHealthChecker struct {
	store     ports.SessionStore
	storeType string
}

// NewSessionStoreHealthChecker creates a new session store health checker
func NewSessionStoreHealthChecker(store ports.SessionStore, storeType string) *SessionStoreHealthChecker {
	return &SessionStoreHealthChecker{store: store, storeType: storeType}
}

// Check writes, reads back and deletes a probe value
func (s *SessionStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "session_store",
		Details: map[string]interface{}{
			"type": s.storeType,
		},
	}

	if s.store == nil {
		status.Status = StatusUnhealthy
		status.Error = "session store is not available"
		return status
	}

	probe := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	if err := s.store.Set(ctx, sessionProbeKey, probe, time.Minute); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}
	defer func() { _ = s.store.Delete(ctx, sessionProbeKey) }()

	got, err := s.store.Get(ctx, sessionProbeKey)
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}
	if !bytes.Equal(got, probe) {
		status.Status = StatusUnhealthy
		status.Error = "session store returned a different probe value"
		return status
	}

	status.Status = StatusHealthy
	return status
}

// UpstreamConfigHealthChecker reports which upstream endpoints the tools are pointed at
// without calling them
type UpstreamConfigHealthChecker struct {
	configProvider ports.ConfigProvider
}

// NewUpstreamConfigHealthChecker creates a new upstream configuration checker
func NewUpstreamConfigHealthChecker(configProvider ports.ConfigProvider) *UpstreamConfigHealthChecker {
	return &UpstreamConfigHealthChecker{configProvider: configProvider}
}

// Check validates that every configured endpoint is an absolute URL
func (u *UpstreamConfigHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "upstreams",
		Status:    StatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if u.configProvider == nil {
		status.Status = StatusUnhealthy
		status.Error = "config provider is not available"
		return status
	}

	upstream := u.configProvider.GetUpstreamConfig()
	endpoints := map[string]string{
		"forecast":  upstream.ForecastBaseURL,
		"geocoding": upstream.GeocodingURL,
		"alerts":    upstream.AlertsBaseURL,
		"model":     upstream.ModelBaseURL,
	}

	for name, raw := range endpoints {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			status.Status = StatusUnhealthy
			status.Error = name + " endpoint is not an absolute URL"
			status.Details[name] = raw
			continue
		}
		status.Details[name] = parsed.Host
	}
	status.Details["timeout"] = upstream.Timeout.String()

	agent := u.configProvider.GetAgentConfig()
	status.Details["model_name"] = agent.Model
	status.Details["max_turns"] = agent.MaxTurns

	return status
}
