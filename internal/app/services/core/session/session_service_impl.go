package session

import (
	"context"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/app/models"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

// NewSessionService returns a read-only view over the sessions the auth
// service keeps in redis under the session: prefix.
func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return "", exceptions.ErrTokenInvalid(err)
	}
	return sessionData, nil
}
