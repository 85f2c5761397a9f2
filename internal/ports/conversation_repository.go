package ports

import (
	"context"
	"time"
)

// ToolCallRecord summarizes one tool invocation made while answering a question
type ToolCallRecord struct {
	CallID    string `json:"call_id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// ConversationData represents a stored question and answer transcript
type ConversationData struct {
	ID        string
	SessionID string
	Question  string
	Answer    string
	Outcome   string
	Turns     int
	ToolCalls []ToolCallRecord
	CreatedAt time.Time
}

// ConversationRepository defines the contract for transcript persistence
type ConversationRepository interface {
	Save(ctx context.Context, conv *ConversationData) error
	FindByID(ctx context.Context, id string) (*ConversationData, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*ConversationData, error)
	CountByOutcome(ctx context.Context, outcome string) (int64, error)
}
