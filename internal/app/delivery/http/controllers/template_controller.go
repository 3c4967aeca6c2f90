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

type TemplateController struct {
	Log             *zap.Logger
	TemplateUsecase contracts.TemplateUsecase
	InternalConfig  *config.InternalConfig
}

func NewTemplateController(logger *zap.Logger, templateUsecase contracts.TemplateUsecase, internalConfig *config.InternalConfig) *TemplateController {
	return &TemplateController{
		Log:             logger,
		TemplateUsecase: templateUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *TemplateController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.TemplateUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *TemplateController) FindTemplateByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.TemplateUsecase.FindTemplateByID(ctx, templateID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *TemplateController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.TemplateUsecase.CreateTemplate(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}
