package tools

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// SurfacedErrorPrefix starts every error message handed back to the model
const SurfacedErrorPrefix = "An error occurred while running the tool. Please try again. Error: "

// CallResult is the outcome of one tool call as seen by the agent loop.
// Err is set when a surfaced tool failed; Output then holds the model-visible text.
type CallResult struct {
	CallID string
	Name   string
	Output string
	Err    error
}

// Registry holds the tools exposed to the model
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	order   []string
	logger  ports.Logger
	metrics ports.MetricsCollector
}

// NewRegistry creates an empty registry. metrics may be nil.
func NewRegistry(logger ports.Logger, metrics ports.MetricsCollector) *Registry {
	return &Registry{
		tools:   make(map[string]*Tool),
		logger:  logger,
		metrics: metrics,
	}
}

// Register adds a tool; names must be unique
func (r *Registry) Register(tool *Tool) error {
	if tool == nil {
		return errors.NewConfigurationError("cannot register a nil tool", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return errors.NewConfigurationError(fmt.Sprintf("tool %s is already registered", tool.Name), nil)
	}

	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	return nil
}

// Lookup returns the tool registered under name
func (r *Registry) Lookup(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// Tools lists registered tools in registration order
func (r *Registry) Tools() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Definitions describes every tool for the model
func (r *Registry) Definitions() []ports.ToolDefinition {
	tools := r.Tools()
	defs := make([]ports.ToolDefinition, 0, len(tools))
	for _, tool := range tools {
		defs = append(defs, ports.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}
	return defs
}

// Invoke runs a tool and returns its typed result. Failure modes do not apply here:
// every error is returned to the caller.
func (r *Registry) Invoke(ctx context.Context, name string, arguments json.RawMessage) (any, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("tool %s is not registered", name))
	}

	arguments = normalizeArguments(arguments)
	if !json.Valid(arguments) {
		return nil, errors.NewValidationError("failed to parse arguments: not valid JSON")
	}

	args, err := tool.DecodeArguments(arguments)
	if err != nil {
		r.recordCall(ctx, tool.Name, err, 0)
		return nil, err
	}

	return r.execute(ctx, tool, args)
}

// Call runs a tool call requested by the model.
//
// An unknown tool is a model behavior fault, and so are invalid arguments sent to an
// opaque tool. A surfaced tool turns its failure into model-visible text; an opaque
// tool returns the failure as the error.
func (r *Registry) Call(ctx context.Context, call ports.ToolCall) (*CallResult, error) {
	tool, ok := r.Lookup(call.Name)
	if !ok {
		return nil, errors.NewModelBehaviorError(fmt.Sprintf("model called unknown tool %q", call.Name), nil)
	}

	arguments := normalizeArguments(json.RawMessage(call.Arguments))
	var args any
	var argsErr error = errors.NewValidationError("failed to parse arguments: not valid JSON")
	if json.Valid(arguments) {
		args, argsErr = tool.DecodeArguments(arguments)
	}
	if argsErr != nil {
		r.recordCall(ctx, tool.Name, argsErr, 0)
		if tool.FailureMode == FailureOpaque {
			return nil, errors.NewModelBehaviorError(fmt.Sprintf("model sent invalid arguments to %s", tool.Name), argsErr)
		}
		return r.surfaced(call, argsErr), nil
	}

	result, err := r.execute(ctx, tool, args)
	if err != nil {
		if tool.FailureMode == FailureOpaque {
			return nil, err
		}
		return r.surfaced(call, err), nil
	}

	output, err := json.Marshal(result)
	if err != nil {
		return nil, errors.NewMalformedResponseError(fmt.Sprintf("tool %s returned a result that cannot be serialized", tool.Name), err)
	}

	return &CallResult{CallID: call.ID, Name: call.Name, Output: string(output)}, nil
}

func (r *Registry) surfaced(call ports.ToolCall, err error) *CallResult {
	return &CallResult{
		CallID: call.ID,
		Name:   call.Name,
		Output: SurfacedErrorPrefix + err.Error(),
		Err:    err,
	}
}

// execute runs the handler on decoded arguments. Panics and unclassified errors
// are converted into the error taxonomy so nothing raw leaves the tool.
func (r *Registry) execute(ctx context.Context, tool *Tool, args any) (result any, err error) {
	startTime := time.Now()
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = errors.NewServiceUnavailableError(fmt.Sprintf("tool %s failed unexpectedly: %v", tool.Name, p), nil)
		}
		r.recordCall(ctx, tool.Name, err, time.Since(startTime))
	}()

	result, err = tool.run(ctx, args)
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *Registry) recordCall(ctx context.Context, name string, err error, duration time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = errors.TypeOf(err).String()
		r.logger.Warn("Tool call failed",
			ports.F("tool", name),
			ports.F("kind", outcome),
			ports.F("error", err.Error()))
	} else {
		r.logger.Debug("Tool call completed",
			ports.F("tool", name),
			ports.F("duration_ms", duration.Milliseconds()))
	}

	if r.metrics != nil {
		r.metrics.RecordToolCall(ctx, name, outcome, duration)
	}
}

func classify(err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError("tool call timed out", err)
	}
	return errors.NewServiceUnavailableError("tool call failed", err)
}

func normalizeArguments(arguments json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(arguments)) == 0 {
		return json.RawMessage("{}")
	}
	return arguments
}
