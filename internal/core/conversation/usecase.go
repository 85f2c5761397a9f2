package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"weatheragent.app/internal/core/agent"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
	"weatheragent.app/pkg/validation"
)

const (
	MaxQuestionLength  = 2000
	MaxSessionIDLength = 128

	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Outcome labels how a question was settled
type Outcome string

const (
	OutcomeAnswered         Outcome = "answered"
	OutcomeModelError       Outcome = "model_error"
	OutcomeMaxTurnsExceeded Outcome = "max_turns_exceeded"
)

// Outcomes lists every outcome a question can settle with
var Outcomes = []Outcome{OutcomeAnswered, OutcomeModelError, OutcomeMaxTurnsExceeded}

// User-facing answers for the two loop-level outcomes
const (
	ModelErrorAnswer       = "Model encountered an error"
	MaxTurnsExceededAnswer = "Conversation too long"
)

// AgentRunner runs an agent over a question and prior messages
type AgentRunner interface {
	Run(ctx context.Context, a agent.Agent, input string, history []ports.Message) (*agent.RunResult, error)
}

type UseCase struct {
	runner   AgentRunner
	agent    agent.Agent
	sessions *SessionHistory
	repo     ports.ConversationRepository
	logger   ports.Logger
	now      func() time.Time
}

type UseCaseDependencies struct {
	Runner       AgentRunner
	Agent        agent.Agent
	SessionStore ports.SessionStore
	Repository   ports.ConversationRepository
	Config       ports.ConfigProvider
	Logger       ports.Logger
}

// AskRequest is a question, optionally continuing an earlier session
type AskRequest struct {
	Question  string
	SessionID string
}

// AskResult is the settled answer to a question
type AskResult struct {
	ConversationID string                 `json:"conversation_id"`
	SessionID      string                 `json:"session_id"`
	Answer         string                 `json:"answer"`
	Outcome        Outcome                `json:"outcome"`
	Turns          int                    `json:"turns"`
	ToolCalls      []ports.ToolCallRecord `json:"tool_calls"`
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Runner == nil {
		return nil, errors.NewConfigurationError("agent runner is required", nil)
	}
	if err := deps.Agent.Validate(); err != nil {
		return nil, err
	}
	if deps.SessionStore == nil {
		return nil, errors.NewConfigurationError("session store is required", nil)
	}
	if deps.Repository == nil {
		return nil, errors.NewConfigurationError("conversation repository is required", nil)
	}
	if deps.Config == nil {
		return nil, errors.NewConfigurationError("config is required", nil)
	}
	if deps.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	sessionConfig := deps.Config.GetSessionConfig()

	return &UseCase{
		runner:   deps.Runner,
		agent:    deps.Agent,
		sessions: NewSessionHistory(deps.SessionStore, sessionConfig.TTL, sessionConfig.MaxMessages),
		repo:     deps.Repository,
		logger:   deps.Logger,
		now:      time.Now,
	}, nil
}

func validateAskRequest(req AskRequest) error {
	if !validation.IsNotEmpty(req.Question) {
		return errors.NewValidationError("question is required")
	}
	if utf8.RuneCountInString(req.Question) > MaxQuestionLength {
		return errors.NewValidationError(fmt.Sprintf("question must be at most %d characters", MaxQuestionLength))
	}
	if len(req.SessionID) > MaxSessionIDLength {
		return errors.NewValidationError(fmt.Sprintf("session id must be at most %d characters", MaxSessionIDLength))
	}
	return nil
}

// Ask answers a question with the agent.
//
// A model behavior fault and an exhausted turn budget are not errors here: they settle
// the question with a fixed answer and their own outcome. Any other failure is returned.
func (uc *UseCase) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	req.Question = strings.TrimSpace(req.Question)
	req.SessionID = strings.TrimSpace(req.SessionID)
	if err := validateAskRequest(req); err != nil {
		return nil, err
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	history, err := uc.sessions.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Warn("Failed to load session history, starting fresh",
			ports.F("session_id", req.SessionID),
			ports.F("error", err.Error()))
		history = nil
	}

	uc.logger.Debug("Processing question",
		ports.F("session_id", req.SessionID),
		ports.F("history", len(history)))

	run, runErr := uc.runner.Run(ctx, uc.agent, req.Question, history)
	if run == nil {
		run = &agent.RunResult{}
	}

	result := &AskResult{
		ConversationID: uuid.NewString(),
		SessionID:      req.SessionID,
		Turns:          run.Turns,
		ToolCalls:      run.ToolCalls,
	}
	if result.ToolCalls == nil {
		result.ToolCalls = []ports.ToolCallRecord{}
	}

	var newItems []ports.Message
	switch {
	case runErr == nil:
		result.Outcome = OutcomeAnswered
		result.Answer = run.FinalOutput
		newItems = run.NewItems
	case errors.IsModelBehaviorError(runErr):
		result.Outcome = OutcomeModelError
		result.Answer = ModelErrorAnswer
		newItems = settledExchange(req.Question, ModelErrorAnswer)
	case errors.IsMaxTurnsExceededError(runErr):
		result.Outcome = OutcomeMaxTurnsExceeded
		result.Answer = MaxTurnsExceededAnswer
		newItems = settledExchange(req.Question, MaxTurnsExceededAnswer)
	default:
		uc.logger.Error("Question could not be answered",
			ports.F("session_id", req.SessionID),
			ports.F("kind", errors.TypeOf(runErr).String()),
			ports.F("error", runErr.Error()))
		return nil, runErr
	}

	if err := uc.sessions.Save(ctx, req.SessionID, append(history, newItems...)); err != nil {
		uc.logger.Warn("Failed to store session history",
			ports.F("session_id", req.SessionID),
			ports.F("error", err.Error()))
	}

	uc.saveTranscript(ctx, req.Question, result)

	uc.logger.Info("Question settled",
		ports.F("conversation_id", result.ConversationID),
		ports.F("session_id", result.SessionID),
		ports.F("outcome", string(result.Outcome)),
		ports.F("turns", result.Turns))

	return result, nil
}

func settledExchange(question, answer string) []ports.Message {
	return []ports.Message{
		{Role: ports.RoleUser, Content: question},
		{Role: ports.RoleAssistant, Content: answer},
	}
}

func (uc *UseCase) saveTranscript(ctx context.Context, question string, result *AskResult) {
	conv := &ports.ConversationData{
		ID:        result.ConversationID,
		SessionID: result.SessionID,
		Question:  question,
		Answer:    result.Answer,
		Outcome:   string(result.Outcome),
		Turns:     result.Turns,
		ToolCalls: result.ToolCalls,
		CreatedAt: uc.now().UTC(),
	}

	if err := uc.repo.Save(ctx, conv); err != nil {
		uc.logger.Warn("Failed to store transcript",
			ports.F("conversation_id", result.ConversationID),
			ports.F("error", err.Error()))
	}
}

// GetConversation returns a stored transcript
func (uc *UseCase) GetConversation(ctx context.Context, id string) (*ports.ConversationData, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("conversation id is required")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.NewValidationError("conversation id must be a UUID")
	}

	return uc.repo.FindByID(ctx, id)
}

// ListConversations returns the most recent transcripts of a session, newest first
func (uc *UseCase) ListConversations(ctx context.Context, sessionID string, limit int) ([]*ports.ConversationData, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errors.NewValidationError("session id is required")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	return uc.repo.ListBySession(ctx, sessionID, limit)
}

// ResetSession forgets the message history of a session. Transcripts are kept.
func (uc *UseCase) ResetSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return errors.NewValidationError("session id is required")
	}
	return uc.sessions.Clear(ctx, sessionID)
}

// OutcomeCounts returns how many stored transcripts settled with each outcome
func (uc *UseCase) OutcomeCounts(ctx context.Context) (map[Outcome]int64, error) {
	counts := make(map[Outcome]int64, len(Outcomes))
	for _, outcome := range Outcomes {
		n, err := uc.repo.CountByOutcome(ctx, string(outcome))
		if err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, nil
}
