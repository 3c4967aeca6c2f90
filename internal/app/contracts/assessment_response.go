package contracts

import (
	"context"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/dto/requests"
)

type AssessmentResponseUsecase interface {
	FindAll(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error)
	FindAssessmentResponseByID(ctx context.Context, responseID string) (*models.AssessmentResponse, error)
	FindAssessmentResponseByAssessmentID(ctx context.Context, assessmentID string) (*models.AssessmentResponse, error)
	CreateAssessmentResponse(ctx context.Context, payload []byte) (*models.AssessmentResponse, error)
	UpdateAssessmentResponse(ctx context.Context, responseID string, payload []byte) (*models.AssessmentResponse, error)
	UpsertQuestionResponse(ctx context.Context, responseID string, request *requests.UpsertQuestionResponse) (*models.AssessmentResponse, error)
	SubmitAssessmentResponse(ctx context.Context, responseID string) (*models.AssessmentResponse, error)
	FindAssessmentResponseProgress(ctx context.Context, responseID string) (*models.ResponseProgress, error)
}
