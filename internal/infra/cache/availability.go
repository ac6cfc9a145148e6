package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability"

// AvailabilityCache keeps availability views in Redis. Each business has a
// generation counter; invalidation bumps it so older entries are never read
// again and age out through their TTL.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, cfg config.Config) *AvailabilityCache {
	ttl := cfg.Redis.AvailabilityTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityCache{rdb: rdb, ttl: ttl}
}

// Get looks the range up under the current generation. The returned entry
// carries that generation even on a miss, for the follow-up Set.
func (c *AvailabilityCache) Get(ctx context.Context, businessID uuid.UUID, rangeKey string) (queries.CacheEntry, error) {
	gen, err := c.generation(ctx, businessID)
	if err != nil {
		return queries.CacheEntry{}, err
	}
	entry := queries.CacheEntry{Generation: gen}

	raw, err := c.rdb.Get(ctx, viewKey(businessID, gen, rangeKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entry, nil
	}
	if err != nil {
		return entry, errs.Wrap(err, "read availability cache")
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal(raw, &view); err != nil {
		return entry, errs.Wrap(err, "decode availability cache")
	}
	entry.View = &view
	return entry, nil
}

// Set files view under generation, the one observed by the Get that missed.
// If an invalidation ran in between, the entry lands under a retired
// generation and is never read.
func (c *AvailabilityCache) Set(ctx context.Context, businessID uuid.UUID, rangeKey string, generation int64, view *queries.AvailabilityView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "encode availability cache")
	}
	if err := c.rdb.Set(ctx, viewKey(businessID, generation, rangeKey), payload, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "write availability cache")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, businessID uuid.UUID) error {
	if err := c.rdb.Incr(ctx, generationKey(businessID)).Err(); err != nil {
		return errs.Wrap(err, "invalidate availability cache")
	}
	return nil
}

func (c *AvailabilityCache) generation(ctx context.Context, businessID uuid.UUID) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(businessID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "read availability generation")
	}
	return gen, nil
}

func generationKey(businessID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:gen", keyPrefix, businessID)
}

func viewKey(businessID uuid.UUID, gen int64, rangeKey string) string {
	return fmt.Sprintf("%s:%s:%d:%s", keyPrefix, businessID, gen, rangeKey)
}

// NewRedisClient opens the shared Redis client.
func NewRedisClient(cfg config.Config) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}
	cleanup := func() {
		_ = rdb.Close()
	}
	return rdb, cleanup, nil
}
