package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	// Refresh extends the TTL of a lock if owned by lockValue
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
	Ping(ctx context.Context) error
}

// KeyedLocker serializes work per key, waiting for the key until ctx is done.
type KeyedLocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
