package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatheragent.app/internal/mocks"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

type m = map[string]any

func completionBody(message m) m {
	return m{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 0,
		"model":   "llama3.2",
		"choices": []any{m{"index": 0, "finish_reason": "stop", "message": message}},
	}
}

// newTestModel serves body from /v1/chat/completions and captures the decoded request
func newTestModel(t *testing.T, status int, body any, captured *m) ports.ChatModel {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if captured != nil {
			raw, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.NoError(t, json.Unmarshal(raw, captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	model, err := NewOpenAIChatModel(OpenAIChatModelParams{
		BaseURL: server.URL + "/v1",
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Logger:  mocks.NewPermissiveLogger(t),
	})
	require.NoError(t, err)
	return model
}

func TestOpenAIChatModel_TextAnswer(t *testing.T) {
	model := newTestModel(t, http.StatusOK, completionBody(m{"role": "assistant", "content": "It is sunny."}), nil)

	resp, err := model.Complete(context.Background(), ports.ModelRequest{
		Model:    "llama3.2",
		Messages: []ports.Message{{Role: ports.RoleUser, Content: "Weather?"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "It is sunny.", resp.Content)
	assert.Empty(t, resp.ToolCalls)
}

func TestOpenAIChatModel_ToolCalls(t *testing.T) {
	body := completionBody(m{
		"role":    "assistant",
		"content": nil,
		"tool_calls": []any{
			m{"id": "call_1", "type": "function", "function": m{"name": "resolve_location", "arguments": `{"name":"Casablanca"}`}},
		},
	})
	model := newTestModel(t, http.StatusOK, body, nil)

	resp, err := model.Complete(context.Background(), ports.ModelRequest{
		Model:    "llama3.2",
		Messages: []ports.Message{{Role: ports.RoleUser, Content: "Weather in Casablanca?"}},
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Content)
	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, ports.ToolCall{ID: "call_1", Name: "resolve_location", Arguments: `{"name":"Casablanca"}`}, resp.ToolCalls[0])
}

func TestOpenAIChatModel_RequestShape(t *testing.T) {
	var captured m
	model := newTestModel(t, http.StatusOK, completionBody(m{"role": "assistant", "content": "Rain."}), &captured)

	_, err := model.Complete(context.Background(), ports.ModelRequest{
		Model:        "llama3.2",
		Instructions: "You are a weather agent",
		Messages: []ports.Message{
			{Role: ports.RoleUser, Content: "Weather in Casablanca?"},
			{Role: ports.RoleAssistant, ToolCalls: []ports.ToolCall{{ID: "call_1", Name: "resolve_location", Arguments: `{"name":"Casablanca"}`}}},
			{Role: ports.RoleTool, ToolCallID: "call_1", Content: `{"latitude":33.59}`},
		},
		Tools: []ports.ToolDefinition{{
			Name:        "resolve_location",
			Description: "Resolve a place",
			Parameters:  map[string]interface{}{"type": "object"},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "llama3.2", captured["model"])

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 4)

	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "You are a weather agent", system["content"])

	assistant := messages[2].(map[string]any)
	assert.Equal(t, "assistant", assistant["role"])
	calls := assistant["tool_calls"].([]any)
	require.Len(t, calls, 1)
	function := calls[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "resolve_location", function["name"])

	tool := messages[3].(map[string]any)
	assert.Equal(t, "tool", tool["role"])
	assert.Equal(t, "call_1", tool["tool_call_id"])

	tools := captured["tools"].([]any)
	require.Len(t, tools, 1)
	definition := tools[0].(map[string]any)["function"].(map[string]any)
	assert.Equal(t, "resolve_location", definition["name"])
	assert.Equal(t, "Resolve a place", definition["description"])
}

func TestOpenAIChatModel_Errors(t *testing.T) {
	t.Run("UpstreamStatus", func(t *testing.T) {
		model := newTestModel(t, http.StatusInternalServerError, m{"error": m{"message": "boom"}}, nil)

		_, err := model.Complete(context.Background(), ports.ModelRequest{Model: "llama3.2"})

		status, ok := errors.UpstreamStatus(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, status)
	})

	t.Run("NoChoices", func(t *testing.T) {
		body := completionBody(m{})
		body["choices"] = []any{}
		model := newTestModel(t, http.StatusOK, body, nil)

		_, err := model.Complete(context.Background(), ports.ModelRequest{Model: "llama3.2"})

		assert.True(t, errors.IsModelBehaviorError(err))
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		t.Cleanup(server.Close)
		// registered after Close so it runs first and unblocks the handler
		t.Cleanup(func() { close(release) })

		model, err := NewOpenAIChatModel(OpenAIChatModelParams{
			BaseURL: server.URL,
			Logger:  mocks.NewPermissiveLogger(t),
		})
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err = model.Complete(ctx, ports.ModelRequest{Model: "llama3.2"})

		assert.True(t, errors.IsTimeoutError(err), "got %v", err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		model, err := NewOpenAIChatModel(OpenAIChatModelParams{BaseURL: url, Logger: mocks.NewPermissiveLogger(t)})
		require.NoError(t, err)

		_, err = model.Complete(context.Background(), ports.ModelRequest{Model: "llama3.2"})

		assert.True(t, errors.IsServiceUnavailableError(err))
	})
}

func TestNewOpenAIChatModel_RequiresBaseURL(t *testing.T) {
	_, err := NewOpenAIChatModel(OpenAIChatModelParams{Logger: mocks.NewPermissiveLogger(t)})
	assert.True(t, errors.IsConfigurationError(err))
}
