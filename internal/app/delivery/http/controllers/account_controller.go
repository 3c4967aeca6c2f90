package controllers

import (
	"net/http"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccountController struct {
	Log               *zap.Logger
	AccountUsecase    contracts.AccountUsecase
	ContactUsecase    contracts.ContactUsecase
	AssessmentUsecase contracts.AssessmentUsecase
	InternalConfig    *config.InternalConfig
}

func NewAccountController(
	logger *zap.Logger,
	accountUsecase contracts.AccountUsecase,
	contactUsecase contracts.ContactUsecase,
	assessmentUsecase contracts.AssessmentUsecase,
	internalConfig *config.InternalConfig,
) *AccountController {
	return &AccountController{
		Log:               logger,
		AccountUsecase:    accountUsecase,
		ContactUsecase:    contactUsecase,
		AssessmentUsecase: assessmentUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *AccountController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AccountUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AccountController) FindAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, constvars.URLParamAccountID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AccountUsecase.FindAccountByID(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AccountController) FindContactsByAccountID(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, constvars.URLParamAccountID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ContactUsecase.FindContactsByAccountID(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AccountController) FindAssessmentsByAccountID(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, constvars.URLParamAccountID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentsByAccountID(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AccountController) CreateAccount(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AccountUsecase.CreateAccount(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}

func (ctrl *AccountController) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, constvars.URLParamAccountID)
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AccountUsecase.UpdateAccount(ctx, accountID, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AccountController) DeleteAccountByID(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, constvars.URLParamAccountID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err := ctrl.AccountUsecase.DeleteAccountByID(ctx, accountID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.DeleteAccountSuccessMessage)
}
