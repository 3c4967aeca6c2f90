package contracts

import (
	"context"
	"errors"

	"brm-service/internal/app/models"
)

// Repository is typed CRUD over one collection.
type Repository[T models.Entity] interface {
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns nil without error when no record has the id.
	FindByID(ctx context.Context, id string) (*T, error)
	FindByReference(ctx context.Context, referenceID string) ([]T, error)
	Insert(ctx context.Context, entity T) error
	Replace(ctx context.Context, entity T) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	DeleteByReference(ctx context.Context, referenceID string) (int, error)
}

// Transactor runs fn as one unit where the storage driver supports it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repositories struct {
	Accounts    Repository[models.Account]
	Contacts    Repository[models.Contact]
	Templates   Repository[models.Template]
	Assessments Repository[models.Assessment]
	Responses   Repository[models.AssessmentResponse]
	Transactor  Transactor
	Health      HealthChecker
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

var (
	// ErrRecordNotFound is returned by Replace when the record vanished.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateRecord is returned by Insert when a unique reference is taken.
	ErrDuplicateRecord = errors.New("duplicate record")
)
