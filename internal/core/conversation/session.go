package conversation

import (
	"context"
	"encoding/json"
	"time"

	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionHistory keeps the messages of a session in the session store
type SessionHistory struct {
	store       ports.SessionStore
	ttl         time.Duration
	maxMessages int
}

// NewSessionHistory creates a history bound to store. Non-positive limits disable the cap.
func NewSessionHistory(store ports.SessionStore, ttl time.Duration, maxMessages int) *SessionHistory {
	return &SessionHistory{
		store:       store,
		ttl:         ttl,
		maxMessages: maxMessages,
	}
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Load returns the stored messages, or nil for an unknown or expired session
func (h *SessionHistory) Load(ctx context.Context, sessionID string) ([]ports.Message, error) {
	raw, err := h.store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	var messages []ports.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, errors.NewMalformedResponseError("stored session history is not valid", err)
	}
	return messages, nil
}

// Save replaces the stored messages, keeping only the most recent ones
func (h *SessionHistory) Save(ctx context.Context, sessionID string, messages []ports.Message) error {
	raw, err := json.Marshal(h.trim(messages))
	if err != nil {
		return errors.NewMalformedResponseError("session history cannot be serialized", err)
	}
	return h.store.Set(ctx, sessionKey(sessionID), raw, h.ttl)
}

// Clear forgets a session
func (h *SessionHistory) Clear(ctx context.Context, sessionID string) error {
	return h.store.Delete(ctx, sessionKey(sessionID))
}

// trim keeps at most maxMessages and never starts the history in the middle of an
// exchange: the first kept message is always a user message.
func (h *SessionHistory) trim(messages []ports.Message) []ports.Message {
	if h.maxMessages <= 0 || len(messages) <= h.maxMessages {
		return messages
	}

	kept := messages[len(messages)-h.maxMessages:]
	for i, message := range kept {
		if message.Role == ports.RoleUser {
			return kept[i:]
		}
	}
	return []ports.Message{}
}
