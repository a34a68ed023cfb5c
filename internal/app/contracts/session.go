package contracts

import (
	"context"
	"helpora-service/internal/app/models"
)

// SessionService reads sessions created by the external auth service.
type SessionService interface {
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (string, error)
}
