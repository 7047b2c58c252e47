package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDedupTTL = 24 * time.Hour
	keyPrefix       = "notify:"
)

// NotificationDedup remembers which notifications were already delivered.
// Key format: notify:<kind>:<item_id>:<ref_id>
type NotificationDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNotificationDedup wraps client. A non-positive ttl falls back to 24h.
func NewNotificationDedup(client *redis.Client, ttl time.Duration) *NotificationDedup {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &NotificationDedup{client: client, ttl: ttl}
}

// IsDuplicate reports whether a notification with this key was already sent.
func (d *NotificationDedup) IsDuplicate(ctx context.Context, key string) (bool, error) {
	n, err := d.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records key as delivered; it expires after the configured TTL.
func (d *NotificationDedup) Mark(ctx context.Context, key string) error {
	if err := d.client.Set(ctx, keyPrefix+key, "1", d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}
