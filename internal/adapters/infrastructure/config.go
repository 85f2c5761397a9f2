package infrastructure

import (
	"strings"
	"time"

	"weatheragent.app/internal/config"
	"weatheragent.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetAgentConfig returns the agent loop configuration
func (c *ConfigProviderAdapter) GetAgentConfig() ports.AgentConfig {
	opaque := make([]string, 0, len(c.config.Agent.OpaqueTools))
	for _, name := range c.config.Agent.OpaqueTools {
		opaque = append(opaque, strings.TrimSpace(name))
	}

	return ports.AgentConfig{
		Name:          c.config.Agent.Name,
		Instructions:  c.config.Agent.SystemInstructions(),
		Model:         c.config.Model.Name,
		MaxTurns:      c.config.Agent.MaxTurns,
		ExtendedTools: c.config.Agent.ExtendedTools,
		OpaqueTools:   opaque,
	}
}

// GetUpstreamConfig returns the endpoints the tools and the model talk to
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	return ports.UpstreamConfig{
		ForecastBaseURL: c.config.Upstream.ForecastBaseURL,
		GeocodingURL:    c.config.Upstream.GeocodingURL,
		AlertsBaseURL:   c.config.Upstream.AlertsBaseURL,
		ModelBaseURL:    c.config.Model.BaseURL,
		Timeout:         time.Duration(c.config.Upstream.TimeoutSeconds) * time.Second,
	}
}

// GetSessionConfig returns session history configuration
func (c *ConfigProviderAdapter) GetSessionConfig() ports.SessionConfig {
	return ports.SessionConfig{
		StoreType:   c.config.Session.StoreType.String(),
		TTL:         time.Duration(c.config.Session.TTLMinutes) * time.Minute,
		MaxMessages: c.config.Session.MaxMessages,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}
