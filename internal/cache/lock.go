package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Locker serializes booking writes for one barber/day inside this process
// group. The database unique index remains the hard guarantee; the lock only
// keeps concurrent sessions from burning a transaction on a doomed insert.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(addr string) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &RedisLocker{client: client}, nil
}

func BookingKey(barberID uint, date string) string {
	return fmt.Sprintf("booking:%d:%s", barberID, date)
}

func (r *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: acquire %s: %w", key, err)
	}
	return ok, nil
}

func (r *RedisLocker) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("cache: release %s: %w", key, err)
	}
	return nil
}

func (r *RedisLocker) Close() error {
	return r.client.Close()
}
