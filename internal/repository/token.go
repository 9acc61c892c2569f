package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "revoked:"

type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type dbToken struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) TokenRepository {
	return &dbToken{
		client: client,
	}
}

// Revoke - remembers the token id until the token would have expired anyway.
func (that *dbToken) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := that.client.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (that *dbToken) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := that.client.Get(ctx, revokedTokenPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}

	return true, nil
}
