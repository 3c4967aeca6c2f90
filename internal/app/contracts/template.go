package contracts

import (
	"context"

	"brm-service/internal/app/models"
)

type TemplateUsecase interface {
	FindAll(ctx context.Context) ([]models.Template, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error)
	CreateTemplate(ctx context.Context, payload []byte) (*models.Template, error)
	SeedTemplates(ctx context.Context, templates []models.Template) (int, error)
}
