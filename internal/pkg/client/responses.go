package client

import (
	"context"
	"net/url"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/requests"
)

// ListResponses returns every response, or only those of one assessment when
// assessmentID is not empty.
func (c *Client) ListResponses(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	target := c.apiPath(pathResponses)
	if assessmentID != "" {
		target += "?" + constvars.QueryParamAssessmentID + "=" + url.QueryEscape(assessmentID)
	}
	var list []models.AssessmentResponse
	err := c.send(ctx, constvars.MethodGet, target, nil, &list)
	return list, err
}

func (c *Client) GetResponse(ctx context.Context, responseID string) (*models.AssessmentResponse, error) {
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodGet, nil, response, pathResponses, responseID)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) CreateResponse(ctx context.Context, fields Fields) (*models.AssessmentResponse, error) {
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodPost, fields, response, pathResponses)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) UpdateResponse(ctx context.Context, responseID string, fields Fields) (*models.AssessmentResponse, error) {
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodPut, fields, response, pathResponses, responseID)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) SubmitResponse(ctx context.Context, responseID string) (*models.AssessmentResponse, error) {
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodPost, nil, response, pathResponses, responseID, "submit")
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) UpsertAnswer(ctx context.Context, responseID, sectionID, questionID string, value interface{}) (*models.AssessmentResponse, error) {
	request := requests.UpsertQuestionResponse{
		SectionID:  sectionID,
		QuestionID: questionID,
		Value:      value,
	}
	response := new(models.AssessmentResponse)
	err := c.do(ctx, constvars.MethodPost, request, response, pathResponses, responseID, "questions")
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *Client) GetResponseProgress(ctx context.Context, responseID string) (*models.ResponseProgress, error) {
	progress := new(models.ResponseProgress)
	err := c.do(ctx, constvars.MethodGet, nil, progress, pathResponses, responseID, "progress")
	if err != nil {
		return nil, err
	}
	return progress, nil
}
