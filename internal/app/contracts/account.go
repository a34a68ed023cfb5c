package contracts

import (
	"context"
	"helpora-service/internal/app/models"
)

// AccountRepository reads credential records owned by the external auth
// service. Needed only for the delete-profile password confirmation.
type AccountRepository interface {
	FindAccountByID(ctx context.Context, accountID string) (*models.Account, error)
}
