package client

import (
	"context"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
)

func (c *Client) ListAssessments(ctx context.Context) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := c.do(ctx, constvars.MethodGet, nil, &assessments, pathAssessments)
	return assessments, err
}

func (c *Client) GetAssessment(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	assessment := new(models.Assessment)
	err := c.do(ctx, constvars.MethodGet, nil, assessment, pathAssessments, assessmentID)
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

func (c *Client) CreateAssessment(ctx context.Context, fields Fields) (*models.Assessment, error) {
	assessment := new(models.Assessment)
	err := c.do(ctx, constvars.MethodPost, fields, assessment, pathAssessments)
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

func (c *Client) UpdateAssessment(ctx context.Context, assessmentID string, fields Fields) (*models.Assessment, error) {
	assessment := new(models.Assessment)
	err := c.do(ctx, constvars.MethodPut, fields, assessment, pathAssessments, assessmentID)
	if err != nil {
		return nil, err
	}
	return assessment, nil
}

func (c *Client) DeleteAssessment(ctx context.Context, assessmentID string) error {
	return c.do(ctx, constvars.MethodDelete, nil, nil, pathAssessments, assessmentID)
}

// GetAssessmentResponse returns the response attached to the assessment. A 404
// means none has been started yet; check it with IsNotFound.
func (c *Client) GetAssessmentResponse(ctx context.Context, assessmentID string) (*models.AssessmentResponse, error) {
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodGet, nil, response, pathAssessments, assessmentID, "response")
	if err != nil {
		return nil, err
	}
	return response, nil
}
