package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "auth:denylist:"

// TokenDenylist remembers revoked access-token ids until they would have expired anyway.
// A nil client disables it.
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist constructs a denylist backed by client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke denylists jti for ttl. Non-positive ttls are ignored since the token has already expired.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if d == nil || d.client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, denylistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set denylist %s: %w", jti, err)
	}
	return nil
}

// IsRevoked reports whether jti has been denylisted.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if d == nil || d.client == nil || jti == "" {
		return false, nil
	}
	err := d.client.Get(ctx, denylistPrefix+jti).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, fmt.Errorf("redis get denylist %s: %w", jti, err)
	}
}
