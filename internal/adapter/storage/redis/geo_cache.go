package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"saldo-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// GeoCache implements ports.GeoCache using Redis. Entries are stored as JSON.
type GeoCache struct {
	client *goredis.Client
	prefix string
}

// NewGeoCache creates a new Redis-backed geolocation cache.
func NewGeoCache(client *goredis.Client) *GeoCache {
	return &GeoCache{
		client: client,
		prefix: "geo:",
	}
}

// Get returns the cached location for ip.
// Returns nil, nil if the key does not exist.
func (c *GeoCache) Get(ctx context.Context, ip string) (*domain.GeoData, error) {
	val, err := c.client.Get(ctx, c.prefix+ip).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis geo get: %w", err)
	}

	var data domain.GeoData
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, fmt.Errorf("decode cached geo: %w", err)
	}
	return &data, nil
}

// Set stores a resolved location with TTL.
func (c *GeoCache) Set(ctx context.Context, ip string, data *domain.GeoData, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode geo: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+ip, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis geo set: %w", err)
	}
	return nil
}
