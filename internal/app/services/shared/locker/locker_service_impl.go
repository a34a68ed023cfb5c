package locker

import (
	"context"
	"errors"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/exceptions"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewLockService builds the SETNX lock behind the profile-save in-flight
// guard. A save that finds the key already set is rejected, not queued;
// the expiration keeps a crashed holder from blocking saves forever.
func NewLockService(redisRepo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: redisRepo,
		Log:       logger,
	}
}

func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		return false, "", err
	}
	if !acquired {
		s.Log.Info("lockService.TryLock already held",
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}
	return true, lockValue, nil
}

func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	if storedVal == "" {
		// Expired on its own; nothing left to release.
		return nil
	}

	// Values go through the redis repository's json marshalling, so the
	// stored form is the quoted lock value.
	if storedVal != strconv.Quote(lockValue) {
		err := exceptions.ErrRedisUnlock(errors.New("lock not owned by this client"))
		s.Log.Error("lockService.Unlock ownership mismatch",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}

	return s.redisRepo.Delete(ctx, key)
}
