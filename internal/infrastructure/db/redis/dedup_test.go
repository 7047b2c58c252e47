package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewNotificationDedup_DefaultTTL(t *testing.T) {
	d := NewNotificationDedup(nil, 0)
	assert.Equal(t, defaultDedupTTL, d.ttl)

	d = NewNotificationDedup(nil, time.Minute)
	assert.Equal(t, time.Minute, d.ttl)
}

func TestNotificationDedup_StoreErrorsAreWrapped(t *testing.T) {
	d := NewNotificationDedup(unreachableClient(t), time.Minute)
	ctx := context.Background()

	dup, err := d.IsDuplicate(ctx, "low_stock:i1:2026-01-01")
	require.Error(t, err)
	assert.False(t, dup)
	assert.Contains(t, err.Error(), "dedup check")

	err = d.Mark(ctx, "low_stock:i1:2026-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dedup mark")
}

func TestConnect_FailsWhenUnreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", PingTimeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
}

func TestConfig_Options(t *testing.T) {
	opts := Config{Addr: "cache:6379", Password: "pw", DB: 2, PoolSize: 20, MinIdleConns: 4}.options()

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, defaultIOTimeout, opts.DialTimeout)
	assert.Equal(t, defaultIOTimeout, opts.ReadTimeout)

	opts = Config{IOTimeout: time.Second}.options()
	assert.Equal(t, time.Second, opts.WriteTimeout)
}
