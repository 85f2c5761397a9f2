package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatheragent.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxSessionTTLMinutes = 1440
	maxPortNumber        = 65535
	maxAgentTurns        = 50
	maxUpstreamTimeout   = 120
	maxSessionMessages   = 500
)

const DefaultInstructions = "You are a gentle weather assistant. Resolve place names to coordinates with resolve_location " +
	"before asking for weather. Use get_current_weather for present conditions and get_weather_forecast for the coming days. " +
	"Answer briefly and always mention the units reported by the tools."

// Config represents the application configuration structure
type Config struct {
	Model    ModelConfig    `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Agent    AgentConfig    `split_words:"true"`
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Session  SessionConfig  `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

// ModelConfig points at an OpenAI compatible chat completions endpoint
type ModelConfig struct {
	BaseURL string `envconfig:"MODEL_BASE_URL" required:"true"`
	APIKey  string `envconfig:"MODEL_API_KEY" required:"true"`
	Name    string `envconfig:"MODEL_NAME" required:"true"`
}

type UpstreamConfig struct {
	ForecastBaseURL string `envconfig:"OPENMETEO_BASE_URL" required:"true"`
	AlertsBaseURL   string `envconfig:"WEATHER_BASE_URL" required:"true"`
	AlertsAPIKey    string `envconfig:"WEATHER_API_KEY" required:"true"`
	GeocodingURL    string `envconfig:"GEOCODING_URL" required:"true"`
	TimeoutSeconds  int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
}

type AgentConfig struct {
	Name          string   `envconfig:"AGENT_NAME" default:"Assistant"`
	Instructions  string   `envconfig:"AGENT_INSTRUCTIONS"`
	MaxTurns      int      `envconfig:"AGENT_MAX_TURNS" default:"10"`
	ExtendedTools bool     `envconfig:"AGENT_EXTENDED_TOOLS" default:"false"`
	OpaqueTools   []string `envconfig:"TOOLS_OPAQUE_ERRORS" default:"get_weather_forecast"`
	ToolLogPath   string   `envconfig:"TOOLS_LOG_FILE_PATH"`
}

// SystemInstructions returns the configured prompt or the built-in one
func (a AgentConfig) SystemInstructions() string {
	if strings.TrimSpace(a.Instructions) == "" {
		return DefaultInstructions
	}
	return a.Instructions
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseType selects the transcript store driver
type DatabaseType int

const (
	DatabaseTypeUnknown DatabaseType = iota
	DatabaseTypeSQLite
	DatabaseTypePostgres
)

// String returns the string representation of database type
func (d DatabaseType) String() string {
	switch d {
	case DatabaseTypeSQLite:
		return "sqlite"
	case DatabaseTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the database type is valid
func (d DatabaseType) IsValid() bool {
	return d == DatabaseTypeSQLite || d == DatabaseTypePostgres
}

// DatabaseTypeFromString converts string to DatabaseType enum
func DatabaseTypeFromString(s string) DatabaseType {
	switch s {
	case "sqlite":
		return DatabaseTypeSQLite
	case "postgres":
		return DatabaseTypePostgres
	default:
		return DatabaseTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (d *DatabaseType) UnmarshalText(text []byte) error {
	*d = DatabaseTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (d DatabaseType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type DatabaseConfig struct {
	Type       DatabaseType `envconfig:"DB_TYPE" default:"sqlite"`
	SQLitePath string       `envconfig:"DB_SQLITE_PATH" default:"weather_agent.db"`
	Host       string       `envconfig:"DB_HOST" default:"localhost"`
	Port       int          `envconfig:"DB_PORT" default:"5432"`
	User       string       `envconfig:"DB_USER" default:"postgres"`
	Password   string       `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string       `envconfig:"DB_NAME" default:"weather_agent"`
	SSLMode    string       `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// StoreType represents the type of session store to use
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SessionConfig struct {
	StoreType   StoreType   `envconfig:"SESSION_STORE_TYPE" default:"memory"`
	TTLMinutes  int         `envconfig:"SESSION_TTL_MINUTES" default:"60"`
	MaxMessages int         `envconfig:"SESSION_MAX_MESSAGES" default:"40"`
	Redis       RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weather-agent:"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Model.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Agent.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return nil
}

func validateURL(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (m *ModelConfig) Validate() error {
	if err := validateURL("MODEL_BASE_URL", m.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(m.APIKey) == "" {
		return errors.NewConfigurationError("MODEL_API_KEY cannot be empty", nil)
	}
	if strings.TrimSpace(m.Name) == "" {
		return errors.NewConfigurationError("MODEL_NAME cannot be empty", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	if err := validateURL("OPENMETEO_BASE_URL", u.ForecastBaseURL); err != nil {
		return err
	}
	if err := validateURL("WEATHER_BASE_URL", u.AlertsBaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(u.AlertsAPIKey) == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY cannot be empty", nil)
	}
	if err := validateURL("GEOCODING_URL", u.GeocodingURL); err != nil {
		return err
	}
	if u.TimeoutSeconds < 1 || u.TimeoutSeconds > maxUpstreamTimeout {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (a *AgentConfig) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.NewConfigurationError("AGENT_NAME cannot be empty", nil)
	}
	if a.MaxTurns < 1 || a.MaxTurns > maxAgentTurns {
		return errors.NewConfigurationError("AGENT_MAX_TURNS must be between 1 and 50", nil)
	}
	for _, name := range a.OpaqueTools {
		if strings.TrimSpace(name) == "" {
			return errors.NewConfigurationError("TOOLS_OPAQUE_ERRORS cannot contain empty tool names", nil)
		}
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if !d.Type.IsValid() {
		return errors.NewConfigurationError("DB_TYPE must be one of: sqlite, postgres", nil)
	}
	if d.Type == DatabaseTypeSQLite {
		if strings.TrimSpace(d.SQLitePath) == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when using sqlite", nil)
		}
		return nil
	}
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (s *SessionConfig) Validate() error {
	if !s.StoreType.IsValid() {
		return errors.NewConfigurationError("SESSION_STORE_TYPE must be one of: memory, redis", nil)
	}
	if s.TTLMinutes < 1 || s.TTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("SESSION_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	if s.MaxMessages < 2 || s.MaxMessages > maxSessionMessages {
		return errors.NewConfigurationError("SESSION_MAX_MESSAGES must be between 2 and 500", nil)
	}
	if s.StoreType == StoreTypeRedis {
		return s.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis session store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
