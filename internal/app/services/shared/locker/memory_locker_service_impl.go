package locker

import (
	"context"
	"sync"
	"time"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type memoryLock struct {
	value     string
	expiresAt time.Time
}

type memoryLockService struct {
	mu    sync.Mutex
	locks map[string]memoryLock
	now   func() time.Time
}

// NewMemoryLockService returns a LockerService that only serializes work
// inside the current process.
func NewMemoryLockService() contracts.LockerService {
	return &memoryLockService{
		locks: make(map[string]memoryLock),
		now:   time.Now,
	}
}

func (s *memoryLockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	if err := ctx.Err(); err != nil {
		return false, "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if lock, ok := s.locks[key]; ok && s.now().Before(lock.expiresAt) {
		return false, "", nil
	}

	lockValue := uuid.NewString()
	s.locks[key] = memoryLock{
		value:     lockValue,
		expiresAt: s.now().Add(expiration),
	}
	return true, lockValue, nil
}

func (s *memoryLockService) Unlock(ctx context.Context, key, lockValue string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		return nil
	}
	if lock.value != lockValue {
		if s.now().Before(lock.expiresAt) {
			return exceptions.ErrLockNotOwned(nil, key)
		}
		return nil
	}
	delete(s.locks, key)
	return nil
}

func (s *memoryLockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok || lock.value != lockValue {
		return exceptions.ErrLockNotOwned(nil, key)
	}
	lock.expiresAt = s.now().Add(expiration)
	s.locks[key] = lock
	return nil
}

func (s *memoryLockService) Ping(ctx context.Context) error {
	return nil
}
