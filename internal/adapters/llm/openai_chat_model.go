// Package llm adapts OpenAI compatible chat completion endpoints to the ChatModel port.
package llm

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/packages/param"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// DefaultTimeout bounds one chat completion request
const DefaultTimeout = 60 * time.Second

// OpenAIChatModel implements the ChatModel port over the chat completions API
type OpenAIChatModel struct {
	client openai.Client
	logger ports.Logger
}

// OpenAIChatModelParams holds parameters for creating the chat model
type OpenAIChatModelParams struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     ports.Logger
}

// NewOpenAIChatModel creates a chat model bound to one endpoint.
// Retries are disabled: a failed turn is reported to the caller as is.
func NewOpenAIChatModel(params OpenAIChatModelParams) (ports.ChatModel, error) {
	if strings.TrimSpace(params.BaseURL) == "" {
		return nil, errors.NewConfigurationError("model base URL is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	timeout := params.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithBaseURL(params.BaseURL),
		option.WithAPIKey(params.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if params.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(params.HTTPClient))
	}

	return &OpenAIChatModel{
		client: openai.NewClient(opts...),
		logger: params.Logger,
	}, nil
}

// Complete sends the conversation and returns the first choice
func (m *OpenAIChatModel) Complete(ctx context.Context, req ports.ModelRequest) (*ports.ModelResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: toOpenAIMessages(req.Instructions, req.Messages),
	}
	if len(req.Tools) > 0 {
		params.Tools = toOpenAITools(req.Tools)
	}

	start := time.Now()
	completion, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		classified := classifyModelError(err)
		m.logger.Warn("Chat completion failed",
			ports.F("model", req.Model),
			ports.F("duration", time.Since(start).String()),
			ports.F("error", classified.Error()))
		return nil, classified
	}

	if len(completion.Choices) == 0 {
		return nil, errors.NewModelBehaviorError("model returned no choices", nil)
	}

	message := completion.Choices[0].Message
	resp := &ports.ModelResponse{Content: message.Content}
	for _, call := range message.ToolCalls {
		if call.Function.Name == "" {
			return nil, errors.NewModelBehaviorError(fmt.Sprintf("model returned a tool call without a function name (%s)", call.ID), nil)
		}
		resp.ToolCalls = append(resp.ToolCalls, ports.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}

	m.logger.Debug("Chat completion received",
		ports.F("model", req.Model),
		ports.F("duration", time.Since(start).String()),
		ports.F("tool_calls", len(resp.ToolCalls)))

	return resp, nil
}

func toOpenAIMessages(instructions string, messages []ports.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)
	if instructions != "" {
		result = append(result, openai.SystemMessage(instructions))
	}

	for _, message := range messages {
		switch message.Role {
		case ports.RoleSystem:
			result = append(result, openai.SystemMessage(message.Content))
		case ports.RoleUser:
			result = append(result, openai.UserMessage(message.Content))
		case ports.RoleTool:
			result = append(result, openai.ToolMessage(message.Content, message.ToolCallID))
		case ports.RoleAssistant:
			result = append(result, assistantMessage(message))
		}
	}
	return result
}

func assistantMessage(message ports.Message) openai.ChatCompletionMessageParamUnion {
	assistant := &openai.ChatCompletionAssistantMessageParam{}
	if message.Content != "" {
		assistant.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
			OfString: param.NewOpt(message.Content),
		}
	}

	for _, call := range message.ToolCalls {
		arguments := call.Arguments
		if arguments == "" {
			arguments = "{}"
		}
		assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
			OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
				ID: call.ID,
				Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
					Name:      call.Name,
					Arguments: arguments,
				},
			},
		})
	}

	return openai.ChatCompletionMessageParamUnion{OfAssistant: assistant}
}

func toOpenAITools(definitions []ports.ToolDefinition) []openai.ChatCompletionToolUnionParam {
	result := make([]openai.ChatCompletionToolUnionParam, 0, len(definitions))
	for _, def := range definitions {
		var description param.Opt[string]
		if def.Description != "" {
			description = param.NewOpt(def.Description)
		}
		result = append(result, openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        def.Name,
			Description: description,
			Parameters:  def.Parameters,
		}))
	}
	return result
}

// classifyModelError maps transport and API failures onto the error taxonomy
func classifyModelError(err error) error {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		return errors.NewUpstreamHTTPError(apiErr.StatusCode, fmt.Sprintf("model endpoint returned status %d", apiErr.StatusCode))
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError("model endpoint did not respond in time", err)
	}
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return errors.NewMalformedResponseError("model endpoint returned invalid JSON", err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.NewTimeoutError("model endpoint did not respond in time", err)
	}
	return errors.NewServiceUnavailableError("model endpoint is unreachable", err)
}
