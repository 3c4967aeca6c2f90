package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/drivers/database"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "brm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, constvars.CollectionContacts, false))
	require.NoError(t, Migrate(ctx, db, constvars.CollectionResponses, true))
	return db
}

func TestRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository[models.Contact](db, constvars.CollectionContacts)

	require.NoError(t, repo.Insert(ctx, models.Contact{ID: "c1", FirstName: "Ada", AccountID: "a1"}))
	require.NoError(t, repo.Insert(ctx, models.Contact{ID: "c2", FirstName: "Bob", AccountID: "a1"}))
	require.NoError(t, repo.Insert(ctx, models.Contact{ID: "c3", FirstName: "Cy", AccountID: "a2"}))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c1", all[0].ID, "insertion order is kept")

	found, err := repo.FindByID(ctx, "c3")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Cy", found.FirstName)

	missing, err := repo.FindByID(ctx, "none")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byAccount, err := repo.FindByReference(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, byAccount, 2)

	require.NoError(t, repo.Replace(ctx, models.Contact{ID: "c3", FirstName: "Cy", AccountID: "a1"}))
	byAccount, _ = repo.FindByReference(ctx, "a1")
	assert.Len(t, byAccount, 3, "replace moves the reference index too")

	assert.ErrorIs(t, repo.Replace(ctx, models.Contact{ID: "ghost"}), contracts.ErrRecordNotFound)

	count, err := repo.DeleteByReference(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	deleted, err := repo.DeleteByID(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepositoryUniqueReference(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository[models.AssessmentResponse](db, constvars.CollectionResponses)

	require.NoError(t, repo.Insert(ctx, models.AssessmentResponse{ID: "r1", AssessmentID: "as1"}))
	err := repo.Insert(ctx, models.AssessmentResponse{ID: "r2", AssessmentID: "as1"})
	assert.ErrorIs(t, err, contracts.ErrDuplicateRecord)

	require.NoError(t, repo.Insert(ctx, models.AssessmentResponse{ID: "r3"}))
	require.NoError(t, repo.Insert(ctx, models.AssessmentResponse{ID: "r4"}), "empty references are not unique")
}

func TestTransactor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRepository[models.Contact](db, constvars.CollectionContacts)
	transactor := NewTransactor(db)

	require.NoError(t, repo.Insert(ctx, models.Contact{ID: "c1", AccountID: "a1"}))

	t.Run("Rollback On Error", func(t *testing.T) {
		err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			if _, err := repo.DeleteByID(ctx, "c1"); err != nil {
				return err
			}
			return errors.New("cascade failed")
		})
		require.Error(t, err)

		found, err := repo.FindByID(ctx, "c1")
		require.NoError(t, err)
		assert.NotNil(t, found, "delete must be rolled back")
	})

	t.Run("Commit", func(t *testing.T) {
		err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := repo.DeleteByReference(ctx, "a1")
			return err
		})
		require.NoError(t, err)

		all, _ := repo.FindAll(ctx)
		assert.Empty(t, all)
	})
}
