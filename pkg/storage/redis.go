package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mhanac/storefront-backend/pkg/redis"
)

// Redis persists session state through the shared Redis client. Every write
// refreshes the session TTL so active sessions stay sticky.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps the client with the configured session TTL.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := r.client.Get(ctx, r.client.SessionKey(sessionID, key))
	if errors.Is(err, redis.ErrNotFound) {
		return "", ErrNotFound
	}
	return value, err
}

func (r *Redis) Set(ctx context.Context, sessionID, key, value string) error {
	return r.client.Set(ctx, r.client.SessionKey(sessionID, key), value, r.ttl)
}

func (r *Redis) Delete(ctx context.Context, sessionID, key string) error {
	return r.client.Del(ctx, r.client.SessionKey(sessionID, key))
}
