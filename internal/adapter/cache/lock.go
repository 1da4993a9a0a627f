package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// Locker hands out single-holder locks backed by Redis.
type Locker struct {
	client *redislock.Client
	prefix string
}

// NewLocker creates a Locker whose keys start with prefix.
func NewLocker(rdb redis.Scripter, prefix string) *Locker {
	return &Locker{client: redislock.New(rdb), prefix: prefix}
}

// TryAcquire takes the lock named key for ttl without retrying. ok is false
// when another holder has it. The returned function releases the lock.
func (l *Locker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error) {
	lock, err := l.client.Obtain(ctx, l.prefix+"lock:"+key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("obtain lock %s: %w", key, err)
	}

	return func(ctx context.Context) error {
		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return fmt.Errorf("release lock %s: %w", key, err)
		}
		return nil
	}, true, nil
}
