package utils

import (
	"context"
	"errors"
	"net/http"

	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/responses"
	"brm-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildSuccessResponse writes data as the bare JSON body.
func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func BuildMessageResponse(w http.ResponseWriter, code int, message string) {
	BuildSuccessResponse(w, code, responses.Message{Message: message})
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.Any("location", location),
			)
		}
	} else if errors.Is(err, context.DeadlineExceeded) {
		code = constvars.StatusGatewayTimeout
		clientMessage = constvars.ErrClientServerLongRespond
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	} else {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.Error{Error: clientMessage})
}
