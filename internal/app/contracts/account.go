package contracts

import (
	"context"

	"brm-service/internal/app/models"
)

type AccountUsecase interface {
	FindAll(ctx context.Context) ([]models.Account, error)
	FindAccountByID(ctx context.Context, accountID string) (*models.Account, error)
	CreateAccount(ctx context.Context, payload []byte) (*models.Account, error)
	UpdateAccount(ctx context.Context, accountID string, payload []byte) (*models.Account, error)
	DeleteAccountByID(ctx context.Context, accountID string) error
}
