package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/contact-management/cmd/redis"
)

// Repository caches bearer token lookups in front of the users table. The
// database row stays the source of truth; every method degrades to a no-op
// when no Redis client is configured.
type Repository interface {
	SetToken(ctx context.Context, token, username string, ttl time.Duration) error
	GetToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, token string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetToken stores a token to username mapping expiring with the token.
func (r *redis) SetToken(ctx context.Context, token, username string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "token:" + token
	return client.Set(ctx, key, username, ttl).Err()
}

// GetToken returns the username for a cached token, or empty string on a
// cache miss.
func (r *redis) GetToken(ctx context.Context, token string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	key := "token:" + token
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// DeleteToken removes a cached token mapping, used on logout.
func (r *redis) DeleteToken(ctx context.Context, token string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "token:" + token
	return client.Del(ctx, key).Err()
}
