package contracts

import (
	"context"
	"time"
)

// RedisRepository stores JSON encoded values. The IfEquals calls compare the
// stored value with the encoded value and act only on a match.
type RedisRepository interface {
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error)
	ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	Ping(ctx context.Context) error
}
