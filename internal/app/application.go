package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatheragent.app/internal/adapters/api"
	"weatheragent.app/internal/adapters/database"
	"weatheragent.app/internal/adapters/infrastructure"
	"weatheragent.app/internal/config"
	"weatheragent.app/internal/core/agent"
	"weatheragent.app/internal/core/conversation"
	"weatheragent.app/internal/core/tools"
	"weatheragent.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	conversationUseCase *conversation.UseCase
	runner              *agent.Runner
	agent               agent.Agent

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires every component from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	agentConfig := a.ports.ConfigProvider.GetAgentConfig()
	weatherAgent, err := agent.NewAgent(agentConfig)
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	a.agent = weatherAgent

	a.runner = agent.NewRunner(agent.RunnerParams{
		Model:    a.ports.ChatModel,
		Tools:    a.deps.ToolRegistry(),
		MaxTurns: agentConfig.MaxTurns,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})

	conversationUseCase, err := conversation.NewUseCase(conversation.UseCaseDependencies{
		Runner:       a.runner,
		Agent:        weatherAgent,
		SessionStore: a.ports.SessionStore,
		Repository:   a.ports.ConversationRepository,
		Config:       a.ports.ConfigProvider,
		Logger:       a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create conversation use case: %w", err)
	}
	a.conversationUseCase = conversationUseCase

	slog.Info("Use cases initialized successfully",
		"agent", weatherAgent.Name,
		"model", weatherAgent.Model,
		"max_turns", a.runner.MaxTurns())
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker:     infrastructure.NewDatabaseHealthChecker(a.deps.Database(), database.ConversationsTable),
		SessionStoreChecker: infrastructure.NewSessionStoreHealthChecker(a.ports.SessionStore, a.config.Session.StoreType.String()),
		UpstreamChecker:     infrastructure.NewUpstreamConfigHealthChecker(a.ports.ConfigProvider),
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		ConversationUseCase: a.conversationUseCase,
		ToolCatalog:         a.deps.ToolRegistry(),
		HealthChecker:       systemHealthChecker,
		MetricsHandler:      a.deps.Metrics().Handler(),
		Logger:              a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout has to cover a whole agent run of several model turns
	port := a.ports.ConfigProvider.GetServerConfig().Port
	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.Error("Error shutting down HTTP server", "error", err)
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// ConversationUseCase returns the use case answering questions
func (a *Application) ConversationUseCase() *conversation.UseCase {
	return a.conversationUseCase
}

// ToolRegistry returns the tools offered to the model
func (a *Application) ToolRegistry() *tools.Registry {
	return a.deps.ToolRegistry()
}
