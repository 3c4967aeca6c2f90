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

type AssessmentController struct {
	Log                       *zap.Logger
	AssessmentUsecase         contracts.AssessmentUsecase
	AssessmentResponseUsecase contracts.AssessmentResponseUsecase
	InternalConfig            *config.InternalConfig
}

func NewAssessmentController(
	logger *zap.Logger,
	assessmentUsecase contracts.AssessmentUsecase,
	assessmentResponseUsecase contracts.AssessmentResponseUsecase,
	internalConfig *config.InternalConfig,
) *AssessmentController {
	return &AssessmentController{
		Log:                       logger,
		AssessmentUsecase:         assessmentUsecase,
		AssessmentResponseUsecase: assessmentResponseUsecase,
		InternalConfig:            internalConfig,
	}
}

func (ctrl *AssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAll(ctx)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentController) FindAssessmentByID(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAssessmentByID(ctx, assessmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

// FindAssessmentResponse returns the single response recorded for an assessment.
func (ctrl *AssessmentController) FindAssessmentResponse(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentResponseUsecase.FindAssessmentResponseByAssessmentID(ctx, assessmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.CreateAssessment(ctx, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, response)
}

func (ctrl *AssessmentController) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	payload, err := readPayload(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.UpdateAssessment(ctx, assessmentID, payload)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, response)
}

func (ctrl *AssessmentController) DeleteAssessmentByID(w http.ResponseWriter, r *http.Request) {
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err := ctrl.AssessmentUsecase.DeleteAssessmentByID(ctx, assessmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctx, ctrl.Log, w, err)
		return
	}

	utils.BuildMessageResponse(w, constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage)
}
