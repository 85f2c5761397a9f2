package external

import (
	"context"
	"sync"
	"time"

	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// sweepEvery is the number of writes between two passes over expired sessions
const sweepEvery = 256

// MemorySessionStore keeps session history in process memory. Expired
// sessions are dropped on access and by a sweep every sweepEvery writes.
type MemorySessionStore struct {
	sessions map[string]memorySession
	writes   int
	mutex    sync.RWMutex
	now      func() time.Time
}

type memorySession struct {
	data      []byte
	expiresAt time.Time
}

func (s memorySession) expired(now time.Time) bool {
	return now.After(s.expiresAt)
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)

func (m *MemorySessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("session key cannot be empty")
	}

	m.mutex.RLock()
	session, exists := m.sessions[key]
	m.mutex.RUnlock()

	if !exists || session.expired(m.now()) {
		return nil, errors.NewNotFoundError("session not found")
	}

	out := make([]byte, len(session.data))
	copy(out, session.data)
	return out, nil
}

func (m *MemorySessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("session key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("session value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("session TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	m.sessions[key] = memorySession{data: stored, expiresAt: now.Add(ttl)}

	m.writes++
	if m.writes%sweepEvery == 0 {
		m.sweepLocked(now)
	}
	return nil
}

func (m *MemorySessionStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("session key cannot be empty")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.sessions, key)
	return nil
}

func (m *MemorySessionStore) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("session key cannot be empty")
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	session, exists := m.sessions[key]
	return exists && !session.expired(m.now()), nil
}

func (m *MemorySessionStore) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessions = make(map[string]memorySession)
	return nil
}

// Sweep drops expired sessions and returns how many were removed
func (m *MemorySessionStore) Sweep() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.sweepLocked(m.now())
}

// Len reports the number of stored sessions, expired ones included
func (m *MemorySessionStore) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

func (m *MemorySessionStore) sweepLocked(now time.Time) int {
	removed := 0
	for key, session := range m.sessions {
		if session.expired(now) {
			delete(m.sessions, key)
			removed++
		}
	}
	return removed
}
