package exceptions

import (
	"fmt"
	"strings"

	"brm-service/internal/pkg/constvars"
)

var (
	// Not found
	ErrAccountNotFound = func(err error, accountID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAccountNotFound, notFoundDevMessage(constvars.EntityAccount, accountID))
	}
	ErrContactNotFound = func(err error, contactID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientContactNotFound, notFoundDevMessage(constvars.EntityContact, contactID))
	}
	ErrTemplateNotFound = func(err error, templateID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientTemplateNotFound, notFoundDevMessage(constvars.EntityTemplate, templateID))
	}
	ErrAssessmentNotFound = func(err error, assessmentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAssessmentNotFound, notFoundDevMessage(constvars.EntityAssessment, assessmentID))
	}
	ErrResponseNotFound = func(err error, responseID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientResponseNotFound, notFoundDevMessage(constvars.EntityResponse, responseID))
	}

	// Response lifecycle
	ErrResponseAlreadyExists = func(err error, assessmentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientResponseAlreadyExists, fmt.Sprintf(constvars.ErrDevResponseAlreadyExists, assessmentID))
	}
	ErrInvalidStatusTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientInvalidStatusTransition, fmt.Sprintf(constvars.ErrDevInvalidStatusTransition, from, to))
	}
	ErrMissingRequiredAnswers = func(err error, questionIDs []string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientMissingRequiredAnswers, fmt.Sprintf(constvars.ErrDevMissingRequiredAnswers, strings.Join(questionIDs, ", ")))
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotReadBody)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Storage
	ErrStorageRead = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, fmt.Sprintf(constvars.ErrClientFailedToFetch, collection), fmt.Sprintf(constvars.ErrDevStorageRead, collection))
	}
	ErrStorageWrite = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, fmt.Sprintf(constvars.ErrClientFailedToUpdate, collection), fmt.Sprintf(constvars.ErrDevStorageWrite, collection))
	}
	ErrStorageDelete = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, fmt.Sprintf(constvars.ErrClientFailedToDelete, collection), fmt.Sprintf(constvars.ErrDevStorageDelete, collection))
	}

	// Locker
	ErrLockNotAcquired = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, fmt.Sprintf(constvars.ErrDevLockNotAcquired, key))
	}
	ErrLockNotOwned = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevLockNotOwned, key))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// Minio
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioGetObject, bucketName))
	}
	ErrMinioPutObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPutObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Default Server
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimited)
	}
	ErrRouteNotFound = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, notFoundDevMessage("route", path))
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPanicRecovered, err))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)

func notFoundDevMessage(entity, id string) string {
	return fmt.Sprintf("%s %s: %s", entity, constvars.ErrDevDocumentNotFound, id)
}
