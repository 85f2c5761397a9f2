package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatheragent.app/internal/config"
	"weatheragent.app/pkg/errors"
)

// setupMockRedis starts an in-process Redis server
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func newTestRedisStore(t *testing.T) (*miniredis.Miniredis, *RedisSessionStore) {
	t.Helper()

	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisSessionStore(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mockRedis, adapter
}

func TestNewRedisSessionStore(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisSessionStore(nil)

		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Unreachable", func(t *testing.T) {
		mockRedis, cfg := setupMockRedis(t)
		mockRedis.Close()

		adapter, err := NewRedisSessionStore(cfg)

		assert.Nil(t, adapter)
		assert.True(t, errors.IsServiceUnavailableError(err))
	})
}

func TestRedisSessionStore_Operations(t *testing.T) {
	mockRedis, adapter := newTestRedisStore(t)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte(`[{"role":"user","content":"hi"}]`)

		require.NoError(t, adapter.Set(ctx, "session:a", value, time.Minute))

		retrieved, err := adapter.Get(ctx, "session:a")
		require.NoError(t, err)
		assert.Equal(t, value, retrieved)
		assert.Equal(t, time.Minute, mockRedis.TTL("session:a"))
	})

	t.Run("Miss", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "session:missing")

		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "session:b", []byte("x"), time.Minute))

		exists, err := adapter.Exists(ctx, "session:b")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, adapter.Delete(ctx, "session:b"))

		exists, err = adapter.Exists(ctx, "session:b")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "session:c", []byte("x"), 100*time.Millisecond))

		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "session:c")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "session:d", []byte("x"), time.Minute))
		require.NoError(t, adapter.Clear(ctx))

		assert.Empty(t, mockRedis.Keys())
	})
}

func TestRedisSessionStore_KeyPrefix(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)
	redisConfig.KeyPrefix = "weather-agent:"
	store, err := NewRedisSessionStore(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	require.NoError(t, mockRedis.Set("other-service:key", "keep"))
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("session:%d", i), []byte("x"), time.Minute))
	}

	assert.True(t, mockRedis.Exists("weather-agent:session:0"))
	retrieved, err := store.Get(ctx, "session:0")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), retrieved)

	require.NoError(t, store.Clear(ctx))

	assert.Equal(t, []string{"other-service:key"}, mockRedis.Keys())
}

func TestRedisSessionStore_ValidationErrors(t *testing.T) {
	_, adapter := newTestRedisStore(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := adapter.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return adapter.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return adapter.Set(ctx, "k", nil, time.Minute) }},
		{"SetZeroTTL", func() error { return adapter.Set(ctx, "k", []byte("v"), 0) }},
		{"DeleteEmptyKey", func() error { return adapter.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := adapter.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestRedisSessionStore_ServerGone(t *testing.T) {
	mockRedis, adapter := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, adapter.Ping(ctx))

	mockRedis.Close()

	_, err := adapter.Get(ctx, "session:a")
	assert.True(t, errors.IsServiceUnavailableError(err))
	assert.True(t, errors.IsServiceUnavailableError(adapter.Ping(ctx)))
}
