package controllers

import (
	"context"
	"net/http"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/responses"
	"brm-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type HealthController struct {
	Log            *zap.Logger
	Storage        contracts.HealthChecker
	Locker         contracts.HealthChecker
	Events         contracts.HealthChecker
	InternalConfig *config.InternalConfig
}

func NewHealthController(
	logger *zap.Logger,
	storage contracts.HealthChecker,
	locker contracts.HealthChecker,
	events contracts.HealthChecker,
	internalConfig *config.InternalConfig,
) *HealthController {
	return &HealthController{
		Log:            logger,
		Storage:        storage,
		Locker:         locker,
		Events:         events,
		InternalConfig: internalConfig,
	}
}

// Health answers 200 when every dependency responds and 503 otherwise.
func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response := responses.Health{
		Status:  constvars.HealthStatusOK,
		Storage: ctrl.check(ctx, "storage", ctrl.Storage),
		Locker:  ctrl.check(ctx, "locker", ctrl.Locker),
		Events:  ctrl.check(ctx, "events", ctrl.Events),
	}

	code := constvars.StatusOK
	for _, status := range []string{response.Storage, response.Locker, response.Events} {
		if status != constvars.HealthStatusOK {
			response.Status = constvars.HealthStatusDegraded
			code = constvars.StatusServiceUnavailable
		}
	}

	utils.BuildSuccessResponse(w, code, response)
}

func (ctrl *HealthController) check(ctx context.Context, name string, checker contracts.HealthChecker) string {
	if checker == nil {
		return constvars.HealthStatusOK
	}
	if err := checker.Ping(ctx); err != nil {
		ctrl.Log.Warn("HealthController.Health dependency unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String("dependency", name),
			zap.Error(err),
		)
		return constvars.HealthStatusUnavailable
	}
	return constvars.HealthStatusOK
}
