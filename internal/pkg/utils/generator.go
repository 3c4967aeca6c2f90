package utils

import (
	"fmt"

	"brm-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.NewString())
}

func GenerateLockKey(format, id string) string {
	return fmt.Sprintf(format, id)
}

func GenerateEntityLockKey(collection, id string) string {
	return fmt.Sprintf(constvars.LockKeyEntityFormat, collection, id)
}
