package client

import (
	"context"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
)

const (
	pathAccounts    = "accounts"
	pathContacts    = "contacts"
	pathTemplates   = "templates"
	pathAssessments = "assessments"
	pathResponses   = "responses"
)

func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := c.do(ctx, constvars.MethodGet, nil, &accounts, pathAccounts)
	return accounts, err
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account := new(models.Account)
	err := c.do(ctx, constvars.MethodGet, nil, account, pathAccounts, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (c *Client) CreateAccount(ctx context.Context, fields Fields) (*models.Account, error) {
	account := new(models.Account)
	err := c.do(ctx, constvars.MethodPost, fields, account, pathAccounts)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (c *Client) UpdateAccount(ctx context.Context, accountID string, fields Fields) (*models.Account, error) {
	account := new(models.Account)
	err := c.do(ctx, constvars.MethodPut, fields, account, pathAccounts, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// DeleteAccount also removes the account's contacts on the server.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	return c.do(ctx, constvars.MethodDelete, nil, nil, pathAccounts, accountID)
}

func (c *Client) ListAccountContacts(ctx context.Context, accountID string) ([]models.Contact, error) {
	var contacts []models.Contact
	err := c.do(ctx, constvars.MethodGet, nil, &contacts, pathAccounts, accountID, pathContacts)
	return contacts, err
}

func (c *Client) ListAccountAssessments(ctx context.Context, accountID string) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := c.do(ctx, constvars.MethodGet, nil, &assessments, pathAccounts, accountID, pathAssessments)
	return assessments, err
}
