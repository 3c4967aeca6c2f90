package contracts

import (
	"context"

	"brm-service/internal/app/models"
)

type ContactUsecase interface {
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindContactByID(ctx context.Context, contactID string) (*models.Contact, error)
	FindContactsByAccountID(ctx context.Context, accountID string) ([]models.Contact, error)
	CreateContact(ctx context.Context, payload []byte) (*models.Contact, error)
	UpdateContact(ctx context.Context, contactID string, payload []byte) (*models.Contact, error)
	DeleteContactByID(ctx context.Context, contactID string) error
}
