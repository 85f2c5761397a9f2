package ports

import "context"

// Role identifies the author of a conversation message
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall is a function invocation requested by the model
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one entry of a conversation as exchanged with the model.
// ToolCallID is set on tool messages, ToolCalls on assistant messages that request tools.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolDefinition describes a tool to the model
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ModelRequest is a single chat completion request
type ModelRequest struct {
	Model        string
	Instructions string
	Messages     []Message
	Tools        []ToolDefinition
}

// ModelResponse is the assistant message produced for a ModelRequest
type ModelResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// ChatModel produces the next assistant message for a conversation
type ChatModel interface {
	Complete(ctx context.Context, req ModelRequest) (*ModelResponse, error)
}
