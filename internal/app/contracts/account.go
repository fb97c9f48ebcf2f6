package contracts

import (
	"context"

	"vitalis-service/internal/app/models"
)

type AccountRepository interface {
	FindAccountByID(ctx context.Context, accountID string) (*models.Account, error)
}
