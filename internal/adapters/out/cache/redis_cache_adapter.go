package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

type RedisCacheAdapter struct {
	client *redis.Client
	logger out.LoggerPort
}

func NewRedisCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*RedisCacheAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("cache.redis.connect_failed", out.LogFields{
			"addr":  cfg.RedisAddr(),
			"error": err.Error(),
		})
		return nil, err
	}

	return &RedisCacheAdapter{
		client: client,
		logger: logger,
	}, nil
}

func (a *RedisCacheAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := a.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (a *RedisCacheAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return a.client.Set(ctx, key, value, ttl).Err()
}

func (a *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	return a.client.Del(ctx, key).Err()
}

func (a *RedisCacheAdapter) Close() error {
	return a.client.Close()
}
