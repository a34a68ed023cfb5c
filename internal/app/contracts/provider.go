package contracts

import (
	"context"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/dto/requests"
	"helpora-service/internal/pkg/dto/responses"
)

// ProviderProfileRepository is the authoritative remote store. Lookups
// return (nil, nil) when no document matches; callers decide whether that
// is an error.
type ProviderProfileRepository interface {
	CreateProviderProfile(ctx context.Context, entity *models.ProviderProfile) (*models.ProviderProfile, error)
	UpdateProviderProfile(ctx context.Context, profileID string, entity *models.ProviderProfile) (*models.ProviderProfile, error)
	FindProviderProfileByID(ctx context.Context, profileID string) (*models.ProviderProfile, error)
	FindProviderProfileByAccountID(ctx context.Context, accountID string) (*models.ProviderProfile, error)
	DeleteProviderProfile(ctx context.Context, profileID string) (bool, error)
}

// ProviderProfileCache mirrors the stored profile for offline-first reads,
// keyed by account id. It may serve stale data; the remote store is always
// authoritative.
type ProviderProfileCache interface {
	Get(ctx context.Context, accountID string) (*models.ProviderProfile, error)
	Set(ctx context.Context, accountID string, entity *models.ProviderProfile) error
	Clear(ctx context.Context, accountID string) error
}

type ProviderProfileUsecase interface {
	SaveProfileBySession(ctx context.Context, sessionData string, request *requests.SaveProviderProfile) (*responses.ProviderProfile, bool, error)
	GetProfileBySession(ctx context.Context, sessionData string, withRemoteFallback bool) (*responses.ProviderProfile, error)
	DeleteProfileBySession(ctx context.Context, sessionData string, request *requests.DeleteProviderProfile) error
}
