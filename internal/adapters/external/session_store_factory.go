package external

import (
	"fmt"

	"weatheragent.app/internal/config"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

// SessionStoreFactory builds the conversation history store selected by SESSION_STORE_TYPE
type SessionStoreFactory struct{}

func NewSessionStoreFactory() *SessionStoreFactory {
	return &SessionStoreFactory{}
}

func (f *SessionStoreFactory) CreateSessionStore(cfg *config.SessionConfig) (ports.SessionStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("session config cannot be nil", nil)
	}

	switch cfg.StoreType {
	case config.StoreTypeMemory:
		return NewMemorySessionStore(), nil
	case config.StoreTypeRedis:
		provider, err := NewRedisSessionStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported session store type: %s", cfg.StoreType.String()), nil)
	}
}
