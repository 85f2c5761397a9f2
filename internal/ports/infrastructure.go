package ports

import (
	"context"
	"time"
)

// AgentConfig represents agent loop configuration
type AgentConfig struct {
	Name          string
	Instructions  string
	Model         string
	MaxTurns      int
	ExtendedTools bool
	OpaqueTools   []string
}

// UpstreamConfig represents the endpoints the tools talk to
type UpstreamConfig struct {
	ForecastBaseURL string
	GeocodingURL    string
	AlertsBaseURL   string
	ModelBaseURL    string
	Timeout         time.Duration
}

// SessionConfig represents conversation history storage configuration
type SessionConfig struct {
	StoreType   string
	TTL         time.Duration
	MaxMessages int
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetAgentConfig() AgentConfig
	GetUpstreamConfig() UpstreamConfig
	GetSessionConfig() SessionConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordToolCall(ctx context.Context, tool string, outcome string, duration time.Duration)
	RecordRun(ctx context.Context, outcome string, turns int)
	RecordUpstreamCall(ctx context.Context, upstream string, outcome string)
}
