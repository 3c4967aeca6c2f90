package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"brm-service/internal/app/config"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// requestContext bounds a usecase call by APP_REQUEST_TIMEOUT_IN_SECONDS.
func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := 10 * time.Second
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// readPayload returns the body buffered by the BodyBuffer middleware, reading
// it directly when the middleware did not run.
func readPayload(r *http.Request) ([]byte, error) {
	if raw, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte); ok {
		return raw, nil
	}
	return io.ReadAll(r.Body)
}

// buildUsecaseErrorResponse reports a usecase failure, answering 504 once the
// request deadline has passed.
func buildUsecaseErrorResponse(ctx context.Context, log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
