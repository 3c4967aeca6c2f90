package accounts

import (
	"context"
	"net/http"
	"testing"

	"brm-service/internal/app/models"
	"brm-service/internal/app/services/core/coretest"
	"brm-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestCreateAccount(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAccountUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	first, err := uc.CreateAccount(ctx, []byte(`{"id":"client-id","Name":"Acme","createdAt":"1999-01-01T00:00:00.000Z"}`))
	require.NoError(t, err)
	second, err := uc.CreateAccount(ctx, []byte(`{"Name":"Globex"}`))
	require.NoError(t, err)

	assert.NotEqual(t, "client-id", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Acme", first.Name)
	assert.NotEqual(t, "1999-01-01T00:00:00.000Z", first.CreatedAt)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)

	_, err = uc.CreateAccount(ctx, []byte(`{not json`))
	assertStatus(t, err, http.StatusBadRequest)
}

func TestCreateAccountKeepsUndeclaredFields(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAccountUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	created, err := uc.CreateAccount(ctx, []byte(`{"Name":"Acme","Custom":"x","Phone":5551234}`))
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.Name)
	assert.JSONEq(t, `"x"`, string(created.Extra["Custom"]))
	assert.JSONEq(t, "5551234", string(created.Extra["Phone"]))

	stored, err := uc.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(created.Extra["Custom"]), string(stored.Extra["Custom"]))
	assert.JSONEq(t, string(created.Extra["Phone"]), string(stored.Extra["Phone"]))

	updated, err := uc.UpdateAccount(ctx, created.ID, []byte(`{"Phone":"555-1234","Custom":null}`))
	require.NoError(t, err)
	assert.Equal(t, "555-1234", updated.Phone)
	assert.JSONEq(t, "null", string(updated.Extra["Custom"]))
	assert.NotContains(t, updated.Extra, "Phone")
}

func TestUpdateAccount(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAccountUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	created, err := uc.CreateAccount(ctx, []byte(`{"Name":"Acme","Phone":"555","Industry":"Retail"}`))
	require.NoError(t, err)

	updated, err := uc.UpdateAccount(ctx, created.ID, []byte(`{"Phone":"777","Industry":null,"id":"other"}`))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme", updated.Name, "omitted fields survive")
	assert.Equal(t, "777", updated.Phone)
	assert.Empty(t, updated.Industry, "explicit null resets the field")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)

	stored, err := uc.FindAccountByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *stored)

	_, err = uc.UpdateAccount(ctx, "missing", []byte(`{"Name":"x"}`))
	assertStatus(t, err, http.StatusNotFound)
}

func TestDeleteAccountCascadesContacts(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAccountUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	acme, err := uc.CreateAccount(ctx, []byte(`{"Name":"Acme"}`))
	require.NoError(t, err)
	globex, err := uc.CreateAccount(ctx, []byte(`{"Name":"Globex"}`))
	require.NoError(t, err)

	for _, contact := range []models.Contact{
		{ID: "c1", FirstName: "Ann", AccountID: acme.ID},
		{ID: "c2", FirstName: "Bob", AccountID: acme.ID},
		{ID: "c3", FirstName: "Cid", AccountID: globex.ID},
	} {
		require.NoError(t, repos.Contacts.Insert(ctx, contact))
	}

	require.NoError(t, uc.DeleteAccountByID(ctx, acme.ID))

	_, err = uc.FindAccountByID(ctx, acme.ID)
	assertStatus(t, err, http.StatusNotFound)

	remaining, err := repos.Contacts.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "c3", remaining[0].ID)
}

func TestDeleteMissingAccount(t *testing.T) {
	repos, keyed := coretest.NewRepositories(t)
	uc := NewAccountUsecase(repos, keyed, zap.NewNop())
	ctx := context.Background()

	_, err := uc.CreateAccount(ctx, []byte(`{"Name":"Acme"}`))
	require.NoError(t, err)

	err = uc.DeleteAccountByID(ctx, "missing")
	assertStatus(t, err, http.StatusNotFound)

	accounts, err := uc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}
