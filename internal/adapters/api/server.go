// Package api provides the HTTP adapter: it translates requests into agent, tool
// and conversation use case calls.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheragent.app/internal/core/conversation"
	"weatheragent.app/internal/core/tools"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// HTTPServerAdapter routes HTTP requests using Gin
type HTTPServerAdapter struct {
	router         *gin.Engine
	conversations  ConversationUseCase
	tools          ToolCatalog
	healthChecker  ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
}

// ConversationUseCase is the question answering surface the adapter depends on
type ConversationUseCase interface {
	Ask(ctx context.Context, req conversation.AskRequest) (*conversation.AskResult, error)
	GetConversation(ctx context.Context, id string) (*ports.ConversationData, error)
	ListConversations(ctx context.Context, sessionID string, limit int) ([]*ports.ConversationData, error)
	ResetSession(ctx context.Context, sessionID string) error
	OutcomeCounts(ctx context.Context) (map[conversation.Outcome]int64, error)
}

// ToolCatalog lists registered tools and invokes them directly
type ToolCatalog interface {
	Tools() []*tools.Tool
	Invoke(ctx context.Context, name string, arguments json.RawMessage) (any, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	ConversationUseCase ConversationUseCase
	ToolCatalog         ToolCatalog
	HealthChecker       ports.SystemHealthChecker
	MetricsHandler      http.Handler
	Logger              ports.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:         router,
		conversations:  opts.ConversationUseCase,
		tools:          opts.ToolCatalog,
		healthChecker:  opts.HealthChecker,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
	}

	router.Use(server.requestLogger())
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ConversationUseCase == nil {
		return errors.NewConfigurationError("conversation use case is required", nil)
	}
	if opts.ToolCatalog == nil {
		return errors.NewConfigurationError("tool catalog is required", nil)
	}
	if opts.HealthChecker == nil {
		return errors.NewConfigurationError("health checker is required", nil)
	}
	if opts.MetricsHandler == nil {
		return errors.NewConfigurationError("metrics handler is required", nil)
	}
	if opts.Logger == nil {
		return errors.NewConfigurationError("logger is required", nil)
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/ask", s.ask)
		api.GET("/conversations/:id", s.getConversation)
		api.GET("/sessions/:id/conversations", s.listSessionConversations)
		api.DELETE("/sessions/:id", s.resetSession)
		api.GET("/stats", s.stats)

		api.GET("/tools", s.listTools)
		api.POST("/tools/:name/invoke", s.invokeTool)

		api.GET("/health", s.health)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// GetRouter returns the router serving every route
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("HTTP request handled",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()))
	}
}
