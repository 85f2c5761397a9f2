package database

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// ConversationsTable holds one row per answered question
const ConversationsTable = "conversations"

// ConversationModel represents the database model for answered questions
type ConversationModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	SessionID string    `gorm:"index;size:128;not null"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text"`
	Outcome   string    `gorm:"index;size:32;not null"`
	Turns     int       `gorm:"not null;default:0"`
	ToolCalls string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (ConversationModel) TableName() string {
	return ConversationsTable
}

// ConversationRepositoryAdapter implements the ConversationRepository port using GORM
type ConversationRepositoryAdapter struct {
	db *gorm.DB
}

// NewConversationRepositoryAdapter creates a new conversation repository adapter
func NewConversationRepositoryAdapter(db *gorm.DB) ports.ConversationRepository {
	return &ConversationRepositoryAdapter{db: db}
}

// Save persists a transcript. Saving an existing ID replaces the row.
func (r *ConversationRepositoryAdapter) Save(ctx context.Context, conv *ports.ConversationData) error {
	if conv == nil {
		return errors.NewValidationError("conversation cannot be nil")
	}
	if strings.TrimSpace(conv.ID) == "" {
		return errors.NewValidationError("conversation ID cannot be empty")
	}

	model, err := r.dataToModel(conv)
	if err != nil {
		return err
	}

	if result := r.db.WithContext(ctx).Save(model); result.Error != nil {
		return errors.NewDatabaseError("failed to save conversation", result.Error)
	}

	return nil
}

// FindByID retrieves a transcript by its ID
func (r *ConversationRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.ConversationData, error) {
	if id == "" {
		return nil, errors.NewValidationError("conversation ID cannot be empty")
	}

	var model ConversationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("conversation not found")
		}
		return nil, errors.NewDatabaseError("failed to find conversation by ID", result.Error)
	}

	return r.modelToData(&model)
}

// ListBySession retrieves the latest transcripts of a session, newest first
func (r *ConversationRepositoryAdapter) ListBySession(ctx context.Context, sessionID string, limit int) ([]*ports.ConversationData, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session ID cannot be empty")
	}
	if limit <= 0 {
		return nil, errors.NewValidationError("limit must be positive")
	}

	var models []ConversationModel
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list conversations", result.Error)
	}

	conversations := make([]*ports.ConversationData, 0, len(models))
	for i := range models {
		conv, err := r.modelToData(&models[i])
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conv)
	}

	return conversations, nil
}

// CountByOutcome counts transcripts settled with the given outcome
func (r *ConversationRepositoryAdapter) CountByOutcome(ctx context.Context, outcome string) (int64, error) {
	if outcome == "" {
		return 0, errors.NewValidationError("outcome cannot be empty")
	}

	var count int64
	result := r.db.WithContext(ctx).Model(&ConversationModel{}).Where("outcome = ?", outcome).Count(&count)
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to count conversations by outcome", result.Error)
	}

	return count, nil
}

// dataToModel converts port data to database model
func (r *ConversationRepositoryAdapter) dataToModel(data *ports.ConversationData) (*ConversationModel, error) {
	toolCalls := data.ToolCalls
	if toolCalls == nil {
		toolCalls = []ports.ToolCallRecord{}
	}
	encoded, err := json.Marshal(toolCalls)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to encode tool calls", err)
	}

	createdAt := data.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return &ConversationModel{
		ID:        data.ID,
		SessionID: data.SessionID,
		Question:  data.Question,
		Answer:    data.Answer,
		Outcome:   data.Outcome,
		Turns:     data.Turns,
		ToolCalls: string(encoded),
		CreatedAt: createdAt,
	}, nil
}

// modelToData converts database model to port data
func (r *ConversationRepositoryAdapter) modelToData(model *ConversationModel) (*ports.ConversationData, error) {
	toolCalls := []ports.ToolCallRecord{}
	if model.ToolCalls != "" {
		if err := json.Unmarshal([]byte(model.ToolCalls), &toolCalls); err != nil {
			return nil, errors.NewDatabaseError("stored tool calls are not valid JSON", err)
		}
	}

	return &ports.ConversationData{
		ID:        model.ID,
		SessionID: model.SessionID,
		Question:  model.Question,
		Answer:    model.Answer,
		Outcome:   model.Outcome,
		Turns:     model.Turns,
		ToolCalls: toolCalls,
		CreatedAt: model.CreatedAt,
	}, nil
}
