package ports

import (
	"context"
	"time"
)

// SessionStore keeps serialized conversation history with an expiry.
// Get returns a NOT_FOUND_ERROR for unknown or expired keys and a
// SERVICE_UNAVAILABLE_ERROR when the backing store cannot be reached.
type SessionStore interface {
	Get(ctx context.Context, sessionKey string) ([]byte, error)
	Set(ctx context.Context, sessionKey string, history []byte, ttl time.Duration) error
	Delete(ctx context.Context, sessionKey string) error
	Exists(ctx context.Context, sessionKey string) (bool, error)
	Clear(ctx context.Context) error
}
