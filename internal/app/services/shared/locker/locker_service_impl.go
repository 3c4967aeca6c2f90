package locker

import (
	"context"
	"time"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewLockService returns a LockerService shared by every process pointed at
// the same redis.
func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Debug("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	deleted, err := s.redisRepo.DeleteIfEquals(ctx, key, lockValue)
	if err != nil {
		s.Log.Error("lockService.Unlock error calling redisRepo.DeleteIfEquals",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrLockNotOwned(nil, key)
	}

	s.Log.Debug("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
	)
	return nil
}

// Refresh fails when the lock expired or moved to another owner.
func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	extended, err := s.redisRepo.ExpireIfEquals(ctx, key, lockValue, expiration)
	if err != nil {
		return err
	}
	if !extended {
		return exceptions.ErrLockNotOwned(nil, key)
	}
	return nil
}

func (s *lockService) Ping(ctx context.Context) error {
	return s.redisRepo.Ping(ctx)
}
