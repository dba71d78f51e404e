package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds the caller's token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LegacyLock implements ports.LegacyLocker with SET NX and a fencing token.
type LegacyLock struct {
	client *goredis.Client
	prefix string
}

// NewLegacyLock creates a Redis-backed per-legacy lock.
func NewLegacyLock(client *goredis.Client) *LegacyLock {
	return &LegacyLock{
		client: client,
		prefix: "aevia:lock:legacy:",
	}
}

// Acquire takes the lock for key. acquired is false when another holder has it.
func (l *LegacyLock) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+key, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return token, result == "OK", nil
}

// Release frees the lock if token still owns it. Releasing an expired or
// foreign lock is a no-op.
func (l *LegacyLock) Release(ctx context.Context, key, token string) error {
	if token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}
