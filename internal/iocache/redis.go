package iocache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gnames/gnflora/pkg/config"
	"github.com/gnames/gnflora/pkg/flora"
	"github.com/redis/go-redis/v9"
)

// keyPrefix separates GNflora keys from other data in a shared Redis.
const keyPrefix = "gnflora:occurrences:"

type redisCache struct {
	rdb *redis.Client
}

// NewRedis connects to a Redis server that keeps the cache shared between
// processes. Keys are stored without expiration.
func NewRedis(ctx context.Context, cfg config.CacheConfig) (flora.Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, OpenError("redis", err)
	}

	slog.Info("Occurrence cache opened", "backend", "redis", "addr", cfg.RedisAddr)
	return &redisCache{rdb: rdb}, nil
}

// Get implements flora.Cache.
func (r *redisCache) Get(
	ctx context.Context,
	key string,
) ([]flora.SpeciesAggregate, bool, error) {
	data, err := r.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(key, err)
	}

	res, err := decode(data)
	if err != nil {
		return nil, false, ReadError(key, err)
	}
	return res, true, nil
}

// Set implements flora.Cache.
func (r *redisCache) Set(
	ctx context.Context,
	key string,
	species []flora.SpeciesAggregate,
) error {
	data, err := encode(species)
	if err != nil {
		return WriteError(key, err)
	}

	if err = r.rdb.Set(ctx, keyPrefix+key, data, 0).Err(); err != nil {
		return WriteError(key, err)
	}
	return nil
}

// Close implements flora.Cache.
func (r *redisCache) Close() error {
	return r.rdb.Close()
}
