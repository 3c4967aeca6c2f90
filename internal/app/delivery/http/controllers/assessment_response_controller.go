package controllers

import (
	"net/http"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/requests"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentResponseController struct {
	Log                       *zap.Logger
	AssessmentResponseUsecase contracts.AssessmentResponseUsecase
	InternalConfig            *config.InternalConfig
}

func NewAssessmentResponseController(logger *zap.Logger, assessmentResponseUsecase contracts.AssessmentResponseUsecase, internalConfig *config.InternalConfig) *AssessmentResponseController {
	return &AssessmentResponseController{
		Log:                       logger,
		AssessmentResponseUsecase: assessmentResponseUsecase,
		InternalConfig:            internalConfig,
	}
}

func (ctrl *AssessmentResponseController) FindAll(w http.ResponseWriter, r *http.Request) {
	assessmentID := r.URL.Query().Get(constvars.QueryParamAssessmentID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.FindAll(ctx, assessmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentResponseController) FindAssessmentResponseByID(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.FindAssessmentResponseByID(ctx, responseID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentResponseController) FindAssessmentResponseProgress(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.FindAssessmentResponseProgress(ctx, responseID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentResponseController) CreateAssessmentResponse(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.CreateAssessmentResponse(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}

func (ctrl *AssessmentResponseController) UpdateAssessmentResponse(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.UpdateAssessmentResponse(ctx, responseID, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentResponseController) UpsertQuestionResponse(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	// Bind body to request
	request := new(requests.UpsertQuestionResponse)
	if err := json.Unmarshal(payload, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpsertQuestionResponseRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.UpsertQuestionResponse(ctx, responseID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentResponseController) SubmitAssessmentResponse(w http.ResponseWriter, r *http.Request) {
	responseID := chi.URLParam(r, constvars.URLParamResponseID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.SubmitAssessmentResponse(ctx, responseID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}
