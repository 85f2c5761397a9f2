package ports

import "context"

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthChecker probes one dependency of the agent (database, session store, upstream configuration)
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus is the outcome of one probe. Details carry component specific
// facts such as the database dialect or the configured upstream hosts.
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Healthy reports whether the probe succeeded
func (s HealthStatus) Healthy() bool {
	return s.Status == HealthStatusHealthy
}

// SystemHealthChecker runs every registered probe, keyed by component
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}
