package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"weatheragent.app/internal/config"
	"weatheragent.app/internal/ports"
	"weatheragent.app/pkg/errors"
)

const clearScanCount = 200

// RedisSessionStore keeps session history in Redis under a key prefix,
// so one Redis database can be shared with other services.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

var _ ports.SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore connects to Redis and verifies the connection with a ping
func NewRedisSessionStore(config *config.RedisConfig) (*RedisSessionStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewServiceUnavailableError("failed to connect to Redis", err)
	}

	return &RedisSessionStore{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisSessionStore) key(key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("session key cannot be empty")
	}
	return r.prefix + key, nil
}

func (r *RedisSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey, err := r.key(key)
	if err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, fullKey).Bytes()
	if err == redis.Nil {
		return nil, errors.NewNotFoundError("session not found")
	}
	if err != nil {
		return nil, errors.NewServiceUnavailableError("redis get operation failed", err)
	}
	return val, nil
}

func (r *RedisSessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	fullKey, err := r.key(key)
	if err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("session value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("session TTL must be positive")
	}

	if err := r.client.Set(ctx, fullKey, value, ttl).Err(); err != nil {
		return errors.NewServiceUnavailableError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, key string) error {
	fullKey, err := r.key(key)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, fullKey).Err(); err != nil {
		return errors.NewServiceUnavailableError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisSessionStore) Exists(ctx context.Context, key string) (bool, error) {
	fullKey, err := r.key(key)
	if err != nil {
		return false, err
	}

	count, err := r.client.Exists(ctx, fullKey).Result()
	if err != nil {
		return false, errors.NewServiceUnavailableError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes every key under the store prefix. Without a prefix the whole
// database is flushed.
func (r *RedisSessionStore) Clear(ctx context.Context) error {
	if r.prefix == "" {
		if err := r.client.FlushDB(ctx).Err(); err != nil {
			return errors.NewServiceUnavailableError("redis clear operation failed", err)
		}
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", clearScanCount).Result()
		if err != nil {
			return errors.NewServiceUnavailableError("redis scan operation failed", err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.NewServiceUnavailableError("redis clear operation failed", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks if the Redis connection is alive
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewServiceUnavailableError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisSessionStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewServiceUnavailableError("failed to close Redis connection", err)
	}
	return nil
}
