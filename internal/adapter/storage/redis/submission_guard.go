package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SubmissionGuard implements ports.SubmissionGuard using Redis SET NX.
type SubmissionGuard struct {
	client *goredis.Client
	prefix string
}

// NewSubmissionGuard creates a new Redis-backed submission guard.
func NewSubmissionGuard(client *goredis.Client) *SubmissionGuard {
	return &SubmissionGuard{
		client: client,
		prefix: "submission:",
	}
}

// Acquire atomically claims key for ttl.
// Returns true if the key was free, false if another submission holds it.
func (g *SubmissionGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis submission acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees key so a retried submission is not rejected after a failure.
func (g *SubmissionGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis submission release: %w", err)
	}
	return nil
}
