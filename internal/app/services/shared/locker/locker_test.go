package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"brm-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) DeleteIfEquals(ctx context.Context, key string, value interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.values[key] != value.(string) {
		return false, nil
	}
	delete(f.values, key)
	return true, nil
}

func (f *fakeRedisRepository) ExpireIfEquals(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key] == value.(string), nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeRedisRepository) Ping(ctx context.Context) error {
	return nil
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(newFakeRedisRepository(), zap.NewNop())

	acquired, lockValue, err := service.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, _, err = service.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.False(t, acquired, "second TryLock must fail while the lock is held")

	err = service.Unlock(ctx, "k", "someone-else")
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)

	require.NoError(t, service.Refresh(ctx, "k", lockValue, time.Second))
	assert.ErrorAs(t, service.Refresh(ctx, "k", "someone-else", time.Second), &customErr)
	require.NoError(t, service.Unlock(ctx, "k", lockValue))
	assert.ErrorAs(t, service.Unlock(ctx, "k", lockValue), &customErr, "a released lock is no longer owned")

	acquired, _, err = service.TryLock(ctx, "k", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestMemoryLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Exclusive Until Unlocked", func(t *testing.T) {
		service := NewMemoryLockService()
		acquired, lockValue, err := service.TryLock(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquired, _, _ = service.TryLock(ctx, "k", time.Minute)
		assert.False(t, acquired)

		assert.Error(t, service.Unlock(ctx, "k", "wrong"))
		require.NoError(t, service.Unlock(ctx, "k", lockValue))

		acquired, _, _ = service.TryLock(ctx, "k", time.Minute)
		assert.True(t, acquired)
	})

	t.Run("Expired Lock Can Be Taken", func(t *testing.T) {
		service := NewMemoryLockService().(*memoryLockService)
		current := time.Now()
		service.now = func() time.Time { return current }

		acquired, _, _ := service.TryLock(ctx, "k", time.Second)
		require.True(t, acquired)

		current = current.Add(2 * time.Second)
		acquired, _, _ = service.TryLock(ctx, "k", time.Second)
		assert.True(t, acquired)
	})
}

func TestKeyedLocker(t *testing.T) {
	t.Run("Serializes Work Per Key", func(t *testing.T) {
		keyed := NewKeyedLocker(NewMemoryLockService(), time.Minute, 1000, zap.NewNop())

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			maxSeen int
			counter int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				err := keyed.WithLock(ctx, "collection", func(ctx context.Context) error {
					mu.Lock()
					inside++
					if inside > maxSeen {
						maxSeen = inside
					}
					mu.Unlock()

					value := counter
					time.Sleep(time.Millisecond)
					counter = value + 1

					mu.Lock()
					inside--
					mu.Unlock()
					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, maxSeen)
		assert.Equal(t, 10, counter)
	})

	t.Run("Gives Up When Context Ends", func(t *testing.T) {
		service := NewMemoryLockService()
		_, _, err := service.TryLock(context.Background(), "busy", time.Minute)
		require.NoError(t, err)

		keyed := NewKeyedLocker(service, time.Minute, 100, zap.NewNop())
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		called := false
		err = keyed.WithLock(ctx, "busy", func(ctx context.Context) error {
			called = true
			return nil
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 504, customErr.StatusCode)
		assert.False(t, called)
	})

	t.Run("Releases After Error", func(t *testing.T) {
		keyed := NewKeyedLocker(NewMemoryLockService(), time.Minute, 100, zap.NewNop())
		ctx := context.Background()

		err := keyed.WithLock(ctx, "k", func(ctx context.Context) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)

		err = keyed.WithLock(ctx, "k", func(ctx context.Context) error { return nil })
		assert.NoError(t, err)
	})
	t.Run("Keeps Lock Alive While Work Runs", func(t *testing.T) {
		service := NewMemoryLockService()
		keyed := NewKeyedLocker(service, 60*time.Millisecond, 100, zap.NewNop())

		err := keyed.WithLock(context.Background(), "slow", func(ctx context.Context) error {
			time.Sleep(150 * time.Millisecond)
			acquired, _, err := service.TryLock(ctx, "slow", time.Minute)
			require.NoError(t, err)
			assert.False(t, acquired, "lock must still be held after its first expiration")
			return nil
		})
		require.NoError(t, err)

		acquired, _, err := service.TryLock(context.Background(), "slow", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired, "lock must be released after the work")
	})
}
