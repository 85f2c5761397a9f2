package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
	"weatheragent.app/internal/adapters/database"
	"weatheragent.app/internal/adapters/external"
	"weatheragent.app/internal/adapters/infrastructure"
	"weatheragent.app/internal/adapters/llm"
	"weatheragent.app/internal/config"
	"weatheragent.app/internal/core/tools"
	"weatheragent.app/internal/ports"
)

// DependencyContainer owns every adapter built from configuration
type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	ports      *ports.ApplicationPorts
	registry   *tools.Registry
	metrics    *infrastructure.PrometheusMetricsCollector
	fileLogger *infrastructure.FileLoggerAdapter
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := container.initializeTools(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize tools: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "type", c.config.Database.Type.String())

	db, err := database.Open(c.config.Database)
	if err != nil {
		return err
	}

	slog.Info("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		return err
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(nil)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = infrastructure.NewPrometheusMetricsCollector(registry)

	// Upstream request logs also go to a JSON-lines file when configured
	upstreamLogger := logger
	if path := c.config.Agent.ToolLogPath; path != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(path)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			upstreamLogger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("Upstream file logging enabled", "path", path)
		}
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	upstream := configProvider.GetUpstreamConfig()

	geocoder := external.NewGeocoderLoggingDecorator(
		external.NewGeocodingClientAdapter(external.GeocodingClientParams{
			URL:     upstream.GeocodingURL,
			Timeout: upstream.Timeout,
			Logger:  logger,
		}), upstreamLogger, c.metrics)

	weatherClient := external.NewWeatherClientLoggingDecorator(
		external.NewOpenMeteoClientAdapter(external.OpenMeteoClientParams{
			BaseURL: upstream.ForecastBaseURL,
			Timeout: upstream.Timeout,
			Logger:  logger,
		}), upstreamLogger, c.metrics)

	alertsClient := external.NewAlertsClientLoggingDecorator(
		external.NewWeatherAPIAlertsClientAdapter(external.WeatherAPIAlertsClientParams{
			APIKey:  c.config.Upstream.AlertsAPIKey,
			BaseURL: upstream.AlertsBaseURL,
			Timeout: upstream.Timeout,
			Logger:  logger,
		}), upstreamLogger, c.metrics)

	chatModel, err := llm.NewOpenAIChatModel(llm.OpenAIChatModelParams{
		BaseURL: c.config.Model.BaseURL,
		APIKey:  c.config.Model.APIKey,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("create chat model: %w", err)
	}

	sessionStore, err := external.NewSessionStoreFactory().CreateSessionStore(&c.config.Session)
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}
	slog.Info("Session store initialized",
		"type", c.config.Session.StoreType.String(),
		"redis_addr", c.config.Session.Redis.Addr)

	c.ports = &ports.ApplicationPorts{
		Geocoder:      geocoder,
		WeatherClient: weatherClient,
		AlertsClient:  alertsClient,

		ChatModel: chatModel,

		ConversationRepository: database.NewConversationRepositoryAdapter(c.db),
		SessionStore:           sessionStore,

		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) initializeTools() error {
	agentConfig := c.ports.ConfigProvider.GetAgentConfig()

	c.registry = tools.NewRegistry(c.ports.Logger, c.ports.Metrics)
	err := tools.RegisterWeatherTools(c.registry, tools.WeatherToolsDependencies{
		Geocoder:      c.ports.Geocoder,
		WeatherClient: c.ports.WeatherClient,
		AlertsClient:  c.ports.AlertsClient,
	}, tools.WeatherToolsOptions{
		Extended:    agentConfig.ExtendedTools,
		OpaqueTools: agentConfig.OpaqueTools,
	})
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for _, tool := range c.registry.Tools() {
		names = append(names, tool.Name+"("+tool.FailureMode.String()+")")
	}
	slog.Info("Tools registered", "tools", names)
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

func (c *DependencyContainer) ToolRegistry() *tools.Registry {
	return c.registry
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup releases the session store, the log file and the database
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.ports != nil {
		if closer, ok := c.ports.SessionStore.(io.Closer); ok {
			keep(closer.Close())
		}
	}
	if c.fileLogger != nil {
		keep(c.fileLogger.Close())
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			keep(db.Close())
		}
	}
	return firstErr
}
