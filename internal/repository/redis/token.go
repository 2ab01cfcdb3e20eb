// Package redis holds the redis-backed repositories. Only refresh tokens
// live here; revocation must take effect immediately across instances,
// which a DB round trip per request would make needlessly expensive.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/haemolab/lab-api/internal/config"
	"github.com/haemolab/lab-api/internal/repository"
)

type tokenRepository struct {
	client *redis.Client
}

// NewClient connects and pings a redis client from config.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewTokenRepository(client *redis.Client) repository.TokenRepository {
	return &tokenRepository{client: client}
}

func key(userID uuid.UUID) string {
	return "refresh_token:" + userID.String()
}

func (r *tokenRepository) Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *tokenRepository) Valid(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	stored, err := r.client.Get(ctx, key(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return stored == token, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
