package cart

import (
	"context"
	"errors"
	"time"

	"github.com/trinhquocthinh/foodhub/pkg/redis"
)

// RedisBackend stores cart blobs under namespaced keys with a TTL so
// abandoned carts eventually expire.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBackend wraps an established redis client.
func NewRedisBackend(client *redis.Client, ttl time.Duration) (*RedisBackend, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisBackend{client: client, ttl: ttl}, nil
}

func (r *RedisBackend) Load(ctx context.Context, sessionID string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (r *RedisBackend) Save(ctx context.Context, sessionID string, data []byte) error {
	return r.client.Set(ctx, r.client.CartKey(sessionID), string(data), r.ttl)
}
