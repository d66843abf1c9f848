package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var _ i.MazeCache = &RedisMazeCache{}

const (
	lockSuffix = ":render_lock"
	lockExpiry = 5 * time.Second
)

// RedisMazeCache caches rendered maze diagrams in Redis with TTL support.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) *RedisMazeCache {
	cache := &RedisMazeCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache
}

// Diagram returns the diagram cached under key. The second result is false on a miss.
func (c *RedisMazeCache) Diagram(ctx context.Context, key string) (string, bool, error) {
	diagram, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return diagram, true, nil
}

// StoreDiagram caches diagram under key for the cache TTL.
func (c *RedisMazeCache) StoreDiagram(ctx context.Context, key, diagram string) error {
	return c.client.Set(ctx, key, diagram, c.ttl).Err()
}

// Lock acquires a distributed lock on key so only one caller renders a given diagram.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
