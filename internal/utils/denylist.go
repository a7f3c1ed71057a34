package utils

import (
	"context" // Context for Redis operations
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

const denylistPrefix = "auth:revoked:" // Key prefix for revoked token IDs

// TokenDenylist remembers revoked token IDs in Redis until the token would expire anyway
type TokenDenylist struct {
	rdb *redis.Client // Redis client
}

// NewTokenDenylist wraps a Redis client
func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{rdb: rdb}
}

// Revoke marks the token ID as revoked until expiresAt
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt) // Remaining token lifetime
	if ttl <= 0 {
		return nil // Already expired, nothing to remember
	}
	return d.rdb.Set(ctx, denylistPrefix+tokenID, 1, ttl).Err() // Set key with TTL
}

// IsRevoked reports whether the token ID was revoked
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := d.rdb.Get(ctx, denylistPrefix+tokenID).Err() // Look the key up
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, nil // Key exists
}
