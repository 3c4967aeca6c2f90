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

type ContactController struct {
	Log            *zap.Logger
	ContactUsecase contracts.ContactUsecase
	InternalConfig *config.InternalConfig
}

func NewContactController(logger *zap.Logger, contactUsecase contracts.ContactUsecase, internalConfig *config.InternalConfig) *ContactController {
	return &ContactController{
		Log:            logger,
		ContactUsecase: contactUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ContactController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ContactUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *ContactController) FindContactByID(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, constvars.URLParamContactID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ContactUsecase.FindContactByID(ctx, contactID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *ContactController) CreateContact(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ContactUsecase.CreateContact(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}

func (ctrl *ContactController) UpdateContact(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, constvars.URLParamContactID)
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ContactUsecase.UpdateContact(ctx, contactID, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *ContactController) DeleteContactByID(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, constvars.URLParamContactID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err := ctrl.ContactUsecase.DeleteContactByID(ctx, contactID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.DeleteContactSuccessMessage)
}
