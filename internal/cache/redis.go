package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/models"
)

// SnapshotKey is the Redis key under which the policy rate snapshot is stored
const SnapshotKey = "rateshift:policy_rate"

// RedisCache shares the snapshot between processes; expiry is left to Redis
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisCache wraps an existing client. A zero ttl disables caching.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: log.With().Str("component", "redis_cache").Logger(),
	}
}

// NewRedisClient opens a client with the timeouts used for snapshot reads
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// Get returns the stored snapshot. Redis errors are logged and treated as a miss.
func (c *RedisCache) Get(ctx context.Context) (models.RateSnapshot, bool) {
	if c.ttl <= 0 {
		return models.RateSnapshot{}, false
	}

	val, err := c.client.Get(ctx, SnapshotKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("Snapshot cache read failed")
		}
		return models.RateSnapshot{}, false
	}

	var snapshot models.RateSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		c.logger.Warn().Err(err).Msg("Discarding undecodable cached snapshot")
		return models.RateSnapshot{}, false
	}
	return snapshot, true
}

func (c *RedisCache) Set(ctx context.Context, snapshot models.RateSnapshot) error {
	if c.ttl <= 0 {
		return nil
	}

	payload, err := EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, SnapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("storing snapshot: %w", err)
	}
	return nil
}

// EncodeSnapshot is the wire form stored in Redis
func EncodeSnapshot(snapshot models.RateSnapshot) (string, error) {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(b), nil
}
