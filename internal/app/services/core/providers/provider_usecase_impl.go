package providers

import (
	"context"
	"helpora-service/internal/app/config"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/dto/requests"
	"helpora-service/internal/pkg/dto/responses"
	"helpora-service/internal/pkg/exceptions"
	"helpora-service/internal/pkg/profile"
	"helpora-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type providerProfileUsecase struct {
	Log               *zap.Logger
	SessionService    contracts.SessionService
	ProviderRepo      contracts.ProviderProfileRepository
	ProviderCache     contracts.ProviderProfileCache
	AccountRepository contracts.AccountRepository
	LockerService     contracts.LockerService
	InternalConfig    *config.InternalConfig
}

func NewProviderProfileUsecase(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	providerRepo contracts.ProviderProfileRepository,
	providerCache contracts.ProviderProfileCache,
	accountRepository contracts.AccountRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
) contracts.ProviderProfileUsecase {
	return &providerProfileUsecase{
		Log:               logger,
		SessionService:    sessionService,
		ProviderRepo:      providerRepo,
		ProviderCache:     providerCache,
		AccountRepository: accountRepository,
		LockerService:     lockerService,
		InternalConfig:    internalConfig,
	}
}

// SaveProfileBySession normalizes, validates and persists the profile from
// the request. A request without an id creates, a request with an id
// updates that document only. The returned bool reports whether a new
// profile was created.
func (uc *providerProfileUsecase) SaveProfileBySession(ctx context.Context, sessionData string, request *requests.SaveProviderProfile) (*responses.ProviderProfile, bool, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, false, err
	}
	if session.IsNotProvider() {
		return nil, false, exceptions.ErrRoleNotAllowed()
	}

	lockKey := constvars.RedisKeyProviderSaveLock + session.AccountID
	lockExpiry := time.Duration(uc.InternalConfig.App.SaveLockExpiryInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		return nil, false, err
	}
	if !acquired {
		return nil, false, exceptions.ErrProviderProfileSaveInFlight()
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("providerProfileUsecase.SaveProfileBySession failed releasing save lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	entity := utils.BuildProviderProfileFromRequest(request)
	entity.AccountID = session.AccountID

	if entity.ID == "" {
		normalized := profile.Normalize(entity, entity.Category)
		if fieldErrors := profile.Validate(normalized, normalized.Category, profile.ModeCreate); len(fieldErrors) > 0 {
			return nil, false, exceptions.ErrProviderProfileValidation(fieldErrors)
		}

		stored, err := uc.ProviderRepo.CreateProviderProfile(ctx, &normalized)
		if err != nil {
			return nil, false, err
		}
		uc.mirrorProfile(ctx, session.AccountID, stored)
		return utils.BuildProviderProfileResponse(stored), true, nil
	}

	existing, err := uc.ProviderRepo.FindProviderProfileByID(ctx, entity.ID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, exceptions.ErrProviderProfileNotFound(nil)
	}
	if existing.AccountID != session.AccountID {
		return nil, false, exceptions.ErrRoleNotAllowed()
	}

	// An edit form posts only what the provider changed; fields it left
	// empty keep their stored values instead of being overwritten.
	normalized := profile.Normalize(profile.MergeStored(entity, *existing), entity.Category)
	if fieldErrors := profile.Validate(normalized, normalized.Category, profile.ModeUpdate); len(fieldErrors) > 0 {
		return nil, false, exceptions.ErrProviderProfileValidation(fieldErrors)
	}

	stored, err := uc.ProviderRepo.UpdateProviderProfile(ctx, normalized.ID, &normalized)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, exceptions.ErrProviderProfileNotFound(nil)
	}
	uc.mirrorProfile(ctx, session.AccountID, stored)
	return utils.BuildProviderProfileResponse(stored), false, nil
}

// GetProfileBySession reads the cached mirror first. When the mirror has
// no entry the remote store is consulted only if the caller asked for the
// fallback; a fresh mirror is written on the way back.
func (uc *providerProfileUsecase) GetProfileBySession(ctx context.Context, sessionData string, withRemoteFallback bool) (*responses.ProviderProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsNotProvider() {
		return nil, exceptions.ErrRoleNotAllowed()
	}

	cached, err := uc.ProviderCache.Get(ctx, session.AccountID)
	if err != nil {
		uc.Log.Warn("providerProfileUsecase.GetProfileBySession cache read failed",
			zap.Error(err),
		)
	}
	if cached != nil {
		return utils.BuildProviderProfileResponse(cached), nil
	}

	if !withRemoteFallback {
		return nil, exceptions.ErrProviderProfileNotFound(nil)
	}

	stored, err := uc.ProviderRepo.FindProviderProfileByAccountID(ctx, session.AccountID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, exceptions.ErrProviderProfileNotFound(nil)
	}
	uc.mirrorProfile(ctx, session.AccountID, stored)
	return utils.BuildProviderProfileResponse(stored), nil
}

// DeleteProfileBySession removes the profile after confirming the account
// password. The remote store is deleted first, then the mirror; a profile
// deleted remotely never comes back from the cache.
func (uc *providerProfileUsecase) DeleteProfileBySession(ctx context.Context, sessionData string, request *requests.DeleteProviderProfile) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.IsNotProvider() {
		return exceptions.ErrRoleNotAllowed()
	}

	account, err := uc.AccountRepository.FindAccountByID(ctx, session.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return exceptions.ErrAccountNotExist(nil)
	}
	if !utils.CheckPasswordHash(request.Password, account.Password) {
		return exceptions.ErrPasswordDoNotMatch(nil)
	}

	stored, err := uc.ProviderRepo.FindProviderProfileByAccountID(ctx, session.AccountID)
	if err != nil {
		return err
	}
	if stored == nil {
		return exceptions.ErrProviderProfileNotFound(nil)
	}

	deleted, err := uc.ProviderRepo.DeleteProviderProfile(ctx, stored.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrProviderProfileNotFound(nil)
	}

	if clearErr := uc.ProviderCache.Clear(ctx, session.AccountID); clearErr != nil {
		uc.Log.Warn("providerProfileUsecase.DeleteProfileBySession failed clearing profile mirror",
			zap.Error(clearErr),
		)
	}
	return nil
}

// mirrorProfile refreshes the redis mirror after a successful remote
// write. Mirror failures are logged, not surfaced: the remote store
// already holds the truth and the entry expires on its own.
func (uc *providerProfileUsecase) mirrorProfile(ctx context.Context, accountID string, entity *models.ProviderProfile) {
	if err := uc.ProviderCache.Set(ctx, accountID, entity); err != nil {
		uc.Log.Warn("providerProfileUsecase.mirrorProfile failed writing profile mirror",
			zap.String(constvars.LoggingProfileIDKey, entity.ID),
			zap.Error(err),
		)
	}
}
