package contracts

import (
	"context"

	"brm-service/internal/app/models"
)

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, event models.StatusChangeEvent) error
	Ping(ctx context.Context) error
}
