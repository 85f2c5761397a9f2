package infrastructure

import (
	"context"

	"weatheragent.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker     ports.HealthChecker
	SessionStoreChecker ports.HealthChecker
	UpstreamChecker     ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker. Nil checkers are skipped.
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.SessionStoreChecker != nil {
		checkers["session_store"] = config.SessionStoreChecker
	}
	if config.UpstreamChecker != nil {
		checkers["upstreams"] = config.UpstreamChecker
	}
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}
	return results
}

// IsHealthy reports whether every component in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, result := range results {
		if !result.Healthy() {
			return false
		}
	}
	return true
}
