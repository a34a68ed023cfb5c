package providers

import (
	"context"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type ProviderProfileRedisCache struct {
	RedisRepository contracts.RedisRepository
	MirrorTTL       time.Duration
}

// NewProviderProfileRedisCache mirrors stored profiles in redis so reads
// keep working when the remote store is unreachable. Entries expire after
// MirrorTTL; the remote store is always authoritative.
func NewProviderProfileRedisCache(redisRepository contracts.RedisRepository, mirrorTTL time.Duration) contracts.ProviderProfileCache {
	return &ProviderProfileRedisCache{
		RedisRepository: redisRepository,
		MirrorTTL:       mirrorTTL,
	}
}

func (c *ProviderProfileRedisCache) Get(ctx context.Context, accountID string) (*models.ProviderProfile, error) {
	data, err := c.RedisRepository.Get(ctx, constvars.RedisKeyProviderProfilePrefix+accountID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	profile := new(models.ProviderProfile)
	if err := json.Unmarshal([]byte(data), profile); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return profile, nil
}

func (c *ProviderProfileRedisCache) Set(ctx context.Context, accountID string, entity *models.ProviderProfile) error {
	return c.RedisRepository.Set(ctx, constvars.RedisKeyProviderProfilePrefix+accountID, entity, c.MirrorTTL)
}

func (c *ProviderProfileRedisCache) Clear(ctx context.Context, accountID string) error {
	return c.RedisRepository.Delete(ctx, constvars.RedisKeyProviderProfilePrefix+accountID)
}
