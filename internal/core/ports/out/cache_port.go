package out

import (
	"context"
	"time"
)

// CachePort - внешнее хранилище кэша со строковыми ключами и байтовыми
// значениями. Хранилище разделяемое, безопасность конкурентного доступа
// обеспечивает адаптер.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
