package client

import (
	"context"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
)

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := c.do(ctx, constvars.MethodGet, nil, &contacts, pathContacts)
	return contacts, err
}

func (c *Client) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	contact := new(models.Contact)
	err := c.do(ctx, constvars.MethodGet, nil, contact, pathContacts, contactID)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) CreateContact(ctx context.Context, fields Fields) (*models.Contact, error) {
	contact := new(models.Contact)
	err := c.do(ctx, constvars.MethodPost, fields, contact, pathContacts)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, fields Fields) (*models.Contact, error) {
	contact := new(models.Contact)
	err := c.do(ctx, constvars.MethodPut, fields, contact, pathContacts, contactID)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	return c.do(ctx, constvars.MethodDelete, nil, nil, pathContacts, contactID)
}
