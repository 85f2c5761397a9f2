package agent

import (
	"context"
	stderrors "errors"
	"strings"

	"weatheragent.app/internal/core/tools"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// DefaultMaxTurns bounds a run when no limit is configured
const DefaultMaxTurns = 10

// RunOutcomeCompleted labels runs that produced a final output
const RunOutcomeCompleted = "completed"

// ToolInvoker executes the tool calls a model asks for
type ToolInvoker interface {
	Definitions() []ports.ToolDefinition
	Call(ctx context.Context, call ports.ToolCall) (*tools.CallResult, error)
}

// RunResult is what a run produced.
// NewItems holds every message added during the run, the user input included.
type RunResult struct {
	FinalOutput string
	Turns       int
	NewItems    []ports.Message
	ToolCalls   []ports.ToolCallRecord
}

// Runner alternates between asking the model and executing the tools it calls
type Runner struct {
	model    ports.ChatModel
	tools    ToolInvoker
	maxTurns int
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// RunnerParams holds parameters for creating a runner. Metrics may be nil.
type RunnerParams struct {
	Model    ports.ChatModel
	Tools    ToolInvoker
	MaxTurns int
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
}

// NewRunner creates a runner; a non-positive MaxTurns falls back to DefaultMaxTurns
func NewRunner(params RunnerParams) *Runner {
	maxTurns := params.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Runner{
		model:    params.Model,
		tools:    params.Tools,
		maxTurns: maxTurns,
		logger:   params.Logger,
		metrics:  params.Metrics,
	}
}

// MaxTurns returns the turn budget of every run
func (r *Runner) MaxTurns() int {
	return r.maxTurns
}

// Run answers input in the context of history.
//
// Each model call is one turn. A response without tool calls and with non-empty
// text ends the run; one without tool calls and without text is asked again.
// Tool calls run one at a time in the order the model listed them.
//
// On error the returned result still holds what the run produced so far.
// The error is MAX_TURNS_EXCEEDED_ERROR when the budget runs out,
// MODEL_BEHAVIOR_ERROR when the model asks for something that cannot run,
// or the failure of an opaque tool as it was classified.
func (r *Runner) Run(ctx context.Context, agent Agent, input string, history []ports.Message) (*RunResult, error) {
	result := &RunResult{}

	messages := make([]ports.Message, 0, len(history)+1)
	messages = append(messages, history...)

	userMessage := ports.Message{Role: ports.RoleUser, Content: input}
	messages = append(messages, userMessage)
	result.NewItems = append(result.NewItems, userMessage)

	definitions := r.tools.Definitions()

	r.logger.Info("Agent run started",
		ports.F("agent", agent.Name),
		ports.F("model", agent.Model),
		ports.F("history", len(history)),
		ports.F("tools", len(definitions)))

	for {
		if result.Turns >= r.maxTurns {
			return r.finish(ctx, result, errors.NewMaxTurnsExceededError(r.maxTurns))
		}
		if err := ctx.Err(); err != nil {
			return r.finish(ctx, result, contextError(err))
		}

		result.Turns++
		response, err := r.model.Complete(ctx, ports.ModelRequest{
			Model:        agent.Model,
			Instructions: agent.Instructions,
			Messages:     messages,
			Tools:        definitions,
		})
		if err != nil {
			return r.finish(ctx, result, err)
		}
		if response == nil {
			return r.finish(ctx, result, errors.NewModelBehaviorError("model returned no message", nil))
		}

		assistant := ports.Message{
			Role:      ports.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		}
		messages = append(messages, assistant)
		result.NewItems = append(result.NewItems, assistant)

		if len(response.ToolCalls) == 0 {
			if strings.TrimSpace(response.Content) != "" {
				result.FinalOutput = response.Content
				return r.finish(ctx, result, nil)
			}
			r.logger.Debug("Model returned an empty message, asking again",
				ports.F("turn", result.Turns))
			continue
		}

		for _, call := range response.ToolCalls {
			r.logger.Debug("Executing tool call",
				ports.F("turn", result.Turns),
				ports.F("tool", call.Name),
				ports.F("call_id", call.ID))

			callResult, err := r.tools.Call(ctx, call)
			if err != nil {
				result.ToolCalls = append(result.ToolCalls, failedRecord(call, err))
				return r.finish(ctx, result, err)
			}

			result.ToolCalls = append(result.ToolCalls, record(call, callResult))

			toolMessage := ports.Message{
				Role:       ports.RoleTool,
				Content:    callResult.Output,
				ToolCallID: call.ID,
			}
			messages = append(messages, toolMessage)
			result.NewItems = append(result.NewItems, toolMessage)
		}
	}
}

func (r *Runner) finish(ctx context.Context, result *RunResult, err error) (*RunResult, error) {
	outcome := RunOutcomeCompleted
	if err != nil {
		outcome = errors.TypeOf(err).String()
		r.logger.Warn("Agent run failed",
			ports.F("turns", result.Turns),
			ports.F("kind", outcome),
			ports.F("error", err.Error()))
	} else {
		r.logger.Info("Agent run completed",
			ports.F("turns", result.Turns),
			ports.F("tool_calls", len(result.ToolCalls)))
	}

	if r.metrics != nil {
		r.metrics.RecordRun(ctx, outcome, result.Turns)
	}

	return result, err
}

func record(call ports.ToolCall, result *tools.CallResult) ports.ToolCallRecord {
	rec := ports.ToolCallRecord{
		CallID:    call.ID,
		Name:      call.Name,
		Arguments: call.Arguments,
		Output:    result.Output,
	}
	if result.Err != nil {
		rec.Error = result.Err.Error()
		rec.ErrorKind = errors.TypeOf(result.Err).String()
	}
	return rec
}

func failedRecord(call ports.ToolCall, err error) ports.ToolCallRecord {
	return ports.ToolCallRecord{
		CallID:    call.ID,
		Name:      call.Name,
		Arguments: call.Arguments,
		Error:     err.Error(),
		ErrorKind: errors.TypeOf(err).String(),
	}
}

func contextError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError("run deadline exceeded", err)
	}
	return errors.NewServiceUnavailableError("run cancelled", err)
}
