package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brm-service/internal/app/config"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAccountUsecase struct {
	mock.Mock
}

func (m *MockAccountUsecase) FindAll(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]models.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountUsecase) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountUsecase) CreateAccount(ctx context.Context, payload []byte) (*models.Account, error) {
	args := m.Called(ctx, payload)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountUsecase) UpdateAccount(ctx context.Context, accountID string, payload []byte) (*models.Account, error) {
	args := m.Called(ctx, accountID, payload)
	account, _ := args.Get(0).(*models.Account)
	return account, args.Error(1)
}

func (m *MockAccountUsecase) DeleteAccountByID(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func newAccountRouter(usecase *MockAccountUsecase) http.Handler {
	controller := NewAccountController(zap.NewNop(), usecase, nil, nil, &config.InternalConfig{App: config.App{RequestTimeoutInSeconds: 1}})
	router := chi.NewRouter()
	router.Get("/accounts", controller.FindAll)
	router.Get("/accounts/{account_id}", controller.FindAccountByID)
	router.Post("/accounts", controller.CreateAccount)
	router.Delete("/accounts/{account_id}", controller.DeleteAccountByID)
	return router
}

func TestAccountController(t *testing.T) {
	t.Run("Find By ID", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("FindAccountByID", mock.Anything, "a1").Return(&models.Account{ID: "a1", Name: "Acme"}, nil)

		rr := httptest.NewRecorder()
		newAccountRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/accounts/a1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Name":"Acme"`)
		usecase.AssertExpectations(t)
	})

	t.Run("Create Passes Raw Body", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("CreateAccount", mock.Anything, []byte(`{"Name":"Acme"}`)).Return(&models.Account{ID: "a1", Name: "Acme"}, nil)

		rr := httptest.NewRecorder()
		newAccountRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{"Name":"Acme"}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("DeleteAccountByID", mock.Anything, "missing").Return(exceptions.ErrAccountNotFound(nil, "missing"))

		rr := httptest.NewRecorder()
		newAccountRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/accounts/missing", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"`+constvars.ErrClientAccountNotFound+`"}`, rr.Body.String())
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		usecase := new(MockAccountUsecase)
		usecase.On("FindAll", mock.Anything).Return(nil, context.DeadlineExceeded)

		rr := httptest.NewRecorder()
		newAccountRouter(usecase).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/accounts", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
		assert.JSONEq(t, `{"error":"`+constvars.ErrClientServerLongRespond+`"}`, rr.Body.String())
	})
}
