package events

import (
	"context"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher drops every event after logging it at debug level.
func NewNoopPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishStatusChange(ctx context.Context, event models.StatusChangeEvent) error {
	p.Log.Debug("noopPublisher.PublishStatusChange dropped event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingResponseIDKey, event.ResponseID),
		zap.String(constvars.LoggingStatusKey, event.Status),
	)
	return nil
}

func (p *noopPublisher) Ping(ctx context.Context) error {
	return nil
}
