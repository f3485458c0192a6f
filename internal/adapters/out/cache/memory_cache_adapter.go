package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

// MemoryCacheAdapter - кэш в памяти процесса для локального запуска без
// Redis. LRU с истечением фиксирует TTL при создании, поэтому аргумент
// ttl в Set игнорируется.
type MemoryCacheAdapter struct {
	cache  *expirable.LRU[string, []byte]
	logger out.LoggerPort
}

func NewMemoryCacheAdapter(cfg *config.Config, ttl time.Duration, logger out.LoggerPort) *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		cache:  expirable.NewLRU[string, []byte](cfg.Cache.MemorySize, nil, ttl),
		logger: logger,
	}
}

func (a *MemoryCacheAdapter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, exists := a.cache.Get(key)
	return value, exists, nil
}

func (a *MemoryCacheAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	a.cache.Add(key, value)
	return nil
}

func (a *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	a.cache.Remove(key)
	return nil
}
