package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatheragent.app/pkg/errors"
)

func TestMemorySessionStore_Operations(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte("history")
		require.NoError(t, store.Set(ctx, "session:a", value, time.Minute))

		value[0] = 'X'

		retrieved, err := store.Get(ctx, "session:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("history"), retrieved)
	})

	t.Run("Miss", func(t *testing.T) {
		retrieved, err := store.Get(ctx, "session:missing")

		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeleteAndExists", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "session:b", []byte("x"), time.Minute))

		exists, err := store.Exists(ctx, "session:b")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, store.Delete(ctx, "session:b"))

		exists, err = store.Exists(ctx, "session:b")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "session:c", []byte("x"), time.Minute))
		require.NoError(t, store.Clear(ctx))

		assert.Zero(t, store.Len())
	})
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "session:a", []byte("x"), time.Minute))
	require.NoError(t, store.Set(ctx, "session:b", []byte("x"), time.Hour))

	now = now.Add(59 * time.Second)
	_, err := store.Get(ctx, "session:a")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	exists, err := store.Exists(ctx, "session:a")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = store.Get(ctx, "session:a")
	assert.True(t, errors.IsNotFoundError(err))

	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_SweepsOnWrites(t *testing.T) {
	store := NewMemorySessionStore()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "stale", []byte("x"), time.Second))
	now = now.Add(time.Minute)

	for i := 1; i < sweepEvery; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("session:%d", i), []byte("x"), time.Hour))
	}

	assert.Equal(t, sweepEvery-1, store.Len())
}

func TestMemorySessionStore_ValidationErrors(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := store.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return store.Set(ctx, "", []byte("v"), time.Minute) }},
		{"SetNilValue", func() error { return store.Set(ctx, "k", nil, time.Minute) }},
		{"SetNegativeTTL", func() error { return store.Set(ctx, "k", []byte("v"), -time.Second) }},
		{"DeleteEmptyKey", func() error { return store.Delete(ctx, "") }},
		{"ExistsEmptyKey", func() error { _, err := store.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}
