package client

import (
	"context"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
)

func (c *Client) ListTemplates(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	err := c.do(ctx, constvars.MethodGet, nil, &templates, pathTemplates)
	return templates, err
}

func (c *Client) GetTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	template := new(models.Template)
	err := c.do(ctx, constvars.MethodGet, nil, template, pathTemplates, templateID)
	if err != nil {
		return nil, err
	}
	return template, nil
}

// CreateTemplate accepts either Fields or a *models.Template read from a file.
func (c *Client) CreateTemplate(ctx context.Context, payload interface{}) (*models.Template, error) {
	template := new(models.Template)
	err := c.do(ctx, constvars.MethodPost, payload, template, pathTemplates)
	if err != nil {
		return nil, err
	}
	return template, nil
}
