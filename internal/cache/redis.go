package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForLikedYouCount is the key of a user's pending "liked you" counter.
func (c *RedisCache) KeyForLikedYouCount(userID uint64) string {
	return fmt.Sprintf("likes:pending:%d", userID)
}

// KeyForUnreadCount is the key of a user's unread message counter.
func (c *RedisCache) KeyForUnreadCount(userID uint64) string {
	return fmt.Sprintf("messages:unread:%d", userID)
}

// versionTTL bounds how long an invalidation stamp outlives the counter.
// It only has to cover loads that are in flight when a write lands.
const versionTTL = 24 * time.Hour

var errStaleLoad = errors.New("cache: counter invalidated during load")

func versionKey(key string) string { return key + ":v" }

// GetCount reads a cached counter. Reads never extend its TTL.
// ok is false on a cache miss or a value that does not parse.
func (c *RedisCache) GetCount(ctx context.Context, key string) (count int64, ok bool, err error) {
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n < 0 {
		return 0, false, nil
	}
	return n, true, nil
}

// SetCount stores a counter with a fresh TTL.
func (c *RedisCache) SetCount(ctx context.Context, key string, count int64, ttl time.Duration) error {
	return c.Client.Set(ctx, key, strconv.FormatInt(count, 10), ttl).Err()
}

// CountOrLoad returns the counter cached at key. On a miss it calls load and
// caches the result, unless InvalidateCount ran for key in the meantime: a
// load that may predate the write it raced with is returned but never stored.
// Redis failures degrade to calling load.
func (c *RedisCache) CountOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) (int64, error)) (int64, error) {
	if n, ok, err := c.GetCount(ctx, key); err == nil && ok {
		return n, nil
	}

	version, verr := c.Client.Get(ctx, versionKey(key)).Int64()
	if verr != nil && !errors.Is(verr, redis.Nil) {
		return load(ctx)
	}

	count, err := load(ctx)
	if err != nil {
		return 0, err
	}
	_ = c.setCountAt(ctx, key, version, count, ttl)
	return count, nil
}

// setCountAt stores count only while key's version still equals version.
func (c *RedisCache) setCountAt(ctx context.Context, key string, version, count int64, ttl time.Duration) error {
	vkey := versionKey(key)
	err := c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleLoad
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, strconv.FormatInt(count, 10), ttl)
			return nil
		})
		return err
	}, vkey)
	if errors.Is(err, errStaleLoad) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// InvalidateCount drops the counters at keys and bumps their versions, so
// loads already in flight do not write a pre-invalidation value back.
// Call it after the write that changes the counters has committed.
func (c *RedisCache) InvalidateCount(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Incr(ctx, versionKey(k))
			pipe.Expire(ctx, versionKey(k), versionTTL)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}
