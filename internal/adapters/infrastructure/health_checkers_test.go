package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatheragent.app/internal/config"
	"weatheragent.app/internal/mocks"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Model: config.ModelConfig{BaseURL: "http://localhost:11434/v1", APIKey: "ollama", Name: "llama3.2"},
		Upstream: config.UpstreamConfig{
			ForecastBaseURL: "https://api.open-meteo.com/v1",
			AlertsBaseURL:   "https://api.weatherapi.com",
			AlertsAPIKey:    "key",
			GeocodingURL:    "https://geocoding-api.open-meteo.com/v1/search",
			TimeoutSeconds:  10,
		},
		Agent: config.AgentConfig{
			Name:        "Assistant",
			MaxTurns:    10,
			OpaqueTools: []string{"get_weather_forecast"},
		},
		Server:  config.ServerConfig{Port: 8080},
		Session: config.SessionConfig{StoreType: config.StoreTypeMemory, TTLMinutes: 60, MaxMessages: 40},
	}
}

func TestConfigProviderAdapter(t *testing.T) {
	provider := NewConfigProviderAdapter(testConfig())

	agent := provider.GetAgentConfig()
	assert.Equal(t, "Assistant", agent.Name)
	assert.Equal(t, "llama3.2", agent.Model)
	assert.Equal(t, config.DefaultInstructions, agent.Instructions)
	assert.Equal(t, []string{"get_weather_forecast"}, agent.OpaqueTools)

	upstream := provider.GetUpstreamConfig()
	assert.Equal(t, 10*time.Second, upstream.Timeout)
	assert.Equal(t, "http://localhost:11434/v1", upstream.ModelBaseURL)

	session := provider.GetSessionConfig()
	assert.Equal(t, "memory", session.StoreType)
	assert.Equal(t, time.Hour, session.TTL)
	assert.Equal(t, 40, session.MaxMessages)

	assert.Equal(t, 8080, provider.GetServerConfig().Port)

	spaced := testConfig()
	spaced.Agent.OpaqueTools = []string{"get_weather_forecast", " get_current_weather"}
	assert.Equal(t, []string{"get_weather_forecast", "get_current_weather"}, NewConfigProviderAdapter(spaced).GetAgentConfig().OpaqueTools)
}

func TestDatabaseHealthChecker(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	status := NewDatabaseHealthChecker(db, "conversations").Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.Equal(t, "table conversations is missing", status.Error)

	require.NoError(t, db.Exec("CREATE TABLE conversations (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("INSERT INTO conversations (id) VALUES ('a'), ('b')").Error)

	status = NewDatabaseHealthChecker(db, "conversations").Check(context.Background())
	assert.Equal(t, StatusHealthy, status.Status)
	assert.Equal(t, "sqlite", status.Details["dialect"])
	assert.Equal(t, int64(2), status.Details["transcripts"])

	require.NoError(t, sqlDB.Close())

	status = NewDatabaseHealthChecker(db, "conversations").Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.NotEmpty(t, status.Error)

	status = NewDatabaseHealthChecker(nil, "conversations").Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
}

func TestSessionStoreHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		var stored []byte
		store := mocks.NewSessionStore(t)
		store.EXPECT().Set(mock.Anything, sessionProbeKey, mock.Anything, time.Minute).
			RunAndReturn(func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
				stored = value
				return nil
			}).Once()
		store.EXPECT().Get(mock.Anything, sessionProbeKey).
			RunAndReturn(func(ctx context.Context, key string) ([]byte, error) {
				return stored, nil
			}).Once()
		store.EXPECT().Delete(mock.Anything, sessionProbeKey).Return(nil).Once()

		status := NewSessionStoreHealthChecker(store, "memory").Check(context.Background())

		assert.Equal(t, StatusHealthy, status.Status)
		assert.Equal(t, "memory", status.Details["type"])
	})

	t.Run("Unavailable", func(t *testing.T) {
		store := mocks.NewSessionStore(t)
		store.EXPECT().Set(mock.Anything, sessionProbeKey, mock.Anything, time.Minute).
			Return(errors.NewServiceUnavailableError("redis set operation failed", nil)).Once()

		status := NewSessionStoreHealthChecker(store, "redis").Check(context.Background())

		assert.Equal(t, StatusUnhealthy, status.Status)
		assert.Contains(t, status.Error, "redis set operation failed")
	})
}

func TestUpstreamConfigHealthChecker(t *testing.T) {
	status := NewUpstreamConfigHealthChecker(NewConfigProviderAdapter(testConfig())).Check(context.Background())
	assert.Equal(t, StatusHealthy, status.Status)
	assert.Equal(t, "api.open-meteo.com", status.Details["forecast"])
	assert.Equal(t, "localhost:11434", status.Details["model"])

	broken := testConfig()
	broken.Upstream.GeocodingURL = "not a url"
	status = NewUpstreamConfigHealthChecker(NewConfigProviderAdapter(broken)).Check(context.Background())
	assert.Equal(t, StatusUnhealthy, status.Status)
	assert.Equal(t, "geocoding endpoint is not an absolute URL", status.Error)
}

func TestSystemHealthChecker(t *testing.T) {
	healthy := mocks.NewHealthChecker(t)
	healthy.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "database", Status: StatusHealthy}).Twice()
	failing := mocks.NewHealthChecker(t)
	failing.EXPECT().Check(mock.Anything).Return(ports.HealthStatus{Component: "session_store", Status: StatusUnhealthy}).Once()

	results := NewSystemHealthChecker(SystemHealthCheckerConfig{
		DatabaseChecker:     healthy,
		SessionStoreChecker: failing,
	}).CheckAll(context.Background())

	require.Len(t, results, 2)
	assert.False(t, IsHealthy(results))

	results = NewSystemHealthChecker(SystemHealthCheckerConfig{DatabaseChecker: healthy}).CheckAll(context.Background())
	assert.True(t, IsHealthy(results))
}
