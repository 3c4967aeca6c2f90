package contracts

import (
	"context"

	"brm-service/internal/app/models"
)

type AssessmentUsecase interface {
	FindAll(ctx context.Context) ([]models.Assessment, error)
	FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error)
	FindAssessmentsByAccountID(ctx context.Context, accountID string) ([]models.Assessment, error)
	CreateAssessment(ctx context.Context, payload []byte) (*models.Assessment, error)
	UpdateAssessment(ctx context.Context, assessmentID string, payload []byte) (*models.Assessment, error)
	DeleteAssessmentByID(ctx context.Context, assessmentID string) error
}
