package utils

import (
	"errors"
	"strings"

	"brm-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		tag := fieldErr.Tag()
		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
		messages = append(messages, fieldErr.Namespace()+" "+customMessage)
	}
	return strings.Join(messages, ", ")
}

// IsResponseStatus reports whether status is one of the response lifecycle states.
func IsResponseStatus(status string) bool {
	return ResponseStatusRank(status) >= 0
}

// ResponseStatusRank orders the response lifecycle states, -1 for unknown values.
func ResponseStatusRank(status string) int {
	switch status {
	case constvars.ResponseStatusNotStarted:
		return 0
	case constvars.ResponseStatusInProgress:
		return 1
	case constvars.ResponseStatusSubmitted:
		return 2
	}
	return -1
}
