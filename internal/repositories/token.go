package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/job-tracker/internal/logger"
)

// TokenRevocationRepository keeps revoked token ids in Redis until the tokens expire.
type TokenRevocationRepository struct {
	client *redis.Client
}

// NewTokenRevocationRepository creates a new repository instance
func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks the token id as revoked for ttl. A non-positive ttl means the token
// has already expired and nothing is stored.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("redis set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKey(tokenID)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("redis exists",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
