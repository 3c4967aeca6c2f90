package locker

import (
	"context"
	"sync"
	"time"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type keyedLocker struct {
	service          contracts.LockerService
	expiration       time.Duration
	retriesPerSecond int
	Log              *zap.Logger
}

// NewKeyedLocker retries TryLock at most retriesPerSecond times a second until
// the lock is acquired or the context ends.
func NewKeyedLocker(service contracts.LockerService, expiration time.Duration, retriesPerSecond int, logger *zap.Logger) contracts.KeyedLocker {
	if retriesPerSecond <= 0 {
		retriesPerSecond = 1
	}
	return &keyedLocker{
		service:          service,
		expiration:       expiration,
		retriesPerSecond: retriesPerSecond,
		Log:              logger,
	}
}

func (l *keyedLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue, err := l.acquire(ctx, key)
	if err != nil {
		l.Log.Error("keyedLocker.WithLock error acquiring lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return err
	}

	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.expiration)
		defer cancel()
		if err := l.service.Unlock(unlockCtx, key, lockValue); err != nil {
			l.Log.Error("keyedLocker.WithLock error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLockKey, key),
				zap.Error(err),
			)
		}
	}()

	stop := l.keepAlive(ctx, key, lockValue)
	defer stop()

	return fn(ctx)
}

// keepAlive refreshes the lock every half expiration while fn runs, so a slow
// cascade does not lose the lock halfway. The returned func stops the refresher
// and waits for it to exit.
func (l *keyedLocker) keepAlive(ctx context.Context, key, lockValue string) func() {
	if l.expiration/2 <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(l.expiration / 2)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := l.service.Refresh(ctx, key, lockValue, l.expiration)
				if err != nil {
					l.Log.Warn("keyedLocker.keepAlive error refreshing lock",
						zap.String(constvars.LoggingLockKey, key),
						zap.Error(err),
					)
					return
				}
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func (l *keyedLocker) acquire(ctx context.Context, key string) (string, error) {
	limiter := rate.NewLimiter(rate.Limit(l.retriesPerSecond), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return "", exceptions.ErrLockNotAcquired(err, key)
		}

		acquired, lockValue, err := l.service.TryLock(ctx, key, l.expiration)
		if err != nil {
			return "", err
		}
		if acquired {
			return lockValue, nil
		}
	}
}
