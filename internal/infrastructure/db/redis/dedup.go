package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 24 * time.Hour

// DedupChecker remembers weight-sample idempotency keys in Redis.
// Key format: dedup:weight:<client_id>:<idempotency_key>
type DedupChecker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDedupChecker creates a DedupChecker. A non-positive ttl uses defaultDedupTTL.
func NewDedupChecker(client *redis.Client, ttl time.Duration) *DedupChecker {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &DedupChecker{client: client, ttl: ttl}
}

// IsDuplicate reports whether the key was already used for this client.
func (d *DedupChecker) IsDuplicate(ctx context.Context, clientID, key string) (bool, error) {
	n, err := d.client.Exists(ctx, dedupKey(clientID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the key until the TTL elapses.
func (d *DedupChecker) Mark(ctx context.Context, clientID, key string) error {
	return d.client.Set(ctx, dedupKey(clientID, key), "1", d.ttl).Err()
}

func dedupKey(clientID, key string) string {
	return fmt.Sprintf("dedup:weight:%s:%s", clientID, key)
}
