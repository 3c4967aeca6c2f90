package assessmentResponses

import (
	"bytes"
	"context"
	"errors"

	"brm-service/internal/app/config"
	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/dto/requests"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Fields owned by the lifecycle operations. Generic payloads never set them.
var lifecycleFields = []string{"status", "responses", "timeline", "submittedAt"}

var (
	createIgnoredFields = append(append([]string{}, models.ImmutableFields...), lifecycleFields...)
	updateIgnoredFields = append(append([]string{"assessmentId"}, models.ImmutableFields...), lifecycleFields...)
)

type assessmentResponseUsecase struct {
	ResponseRepository   contracts.Repository[models.AssessmentResponse]
	AssessmentRepository contracts.Repository[models.Assessment]
	TemplateRepository   contracts.Repository[models.Template]
	Locker               contracts.KeyedLocker
	EventPublisher       contracts.EventPublisher
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewAssessmentResponseUsecase(
	repositories *contracts.Repositories,
	locker contracts.KeyedLocker,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentResponseUsecase {
	return &assessmentResponseUsecase{
		ResponseRepository:   repositories.Responses,
		AssessmentRepository: repositories.Assessments,
		TemplateRepository:   repositories.Templates,
		Locker:               locker,
		EventPublisher:       eventPublisher,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

func (uc *assessmentResponseUsecase) FindAll(ctx context.Context, assessmentID string) ([]models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	var (
		responses []models.AssessmentResponse
		err       error
	)
	if assessmentID != "" {
		responses, err = uc.ResponseRepository.FindByReference(ctx, assessmentID)
	} else {
		responses, err = uc.ResponseRepository.FindAll(ctx)
	}
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.FindAll error fetching responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentResponseUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(responses)),
	)
	return responses, nil
}

func (uc *assessmentResponseUsecase) FindAssessmentResponseByID(ctx context.Context, responseID string) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.FindAssessmentResponseByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)

	response, err := uc.ResponseRepository.FindByID(ctx, responseID)
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.FindAssessmentResponseByID error fetching response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResponseIDKey, responseID),
			zap.Error(err),
		)
		return nil, err
	}
	if response == nil {
		return nil, exceptions.ErrResponseNotFound(nil, responseID)
	}
	return response, nil
}

func (uc *assessmentResponseUsecase) FindAssessmentResponseByAssessmentID(ctx context.Context, assessmentID string) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.FindAssessmentResponseByAssessmentID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	responses, err := uc.ResponseRepository.FindByReference(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, exceptions.ErrResponseNotFound(nil, assessmentID)
	}
	return &responses[0], nil
}

// CreateAssessmentResponse starts a fresh response for an assessment. An
// assessment holds at most one response.
func (uc *assessmentResponseUsecase) CreateAssessmentResponse(ctx context.Context, payload []byte) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.CreateAssessmentResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response, err := utils.MergeFields(new(models.AssessmentResponse), payload, createIgnoredFields...)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	var event models.TimelineEvent
	lockKey := utils.GenerateLockKey(constvars.LockKeyAssessmentResponseFormat, response.AssessmentID)
	err = uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		if response.AssessmentID != "" {
			existing, err := uc.ResponseRepository.FindByReference(ctx, response.AssessmentID)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return exceptions.ErrResponseAlreadyExists(nil, response.AssessmentID)
			}
		}

		if response.AccountID == "" && response.AssessmentID != "" {
			assessment, err := uc.AssessmentRepository.FindByID(ctx, response.AssessmentID)
			if err != nil {
				return err
			}
			if assessment != nil {
				response.AccountID = assessment.AccountID
			}
		}

		response.ID = utils.GenerateID()
		response.Status = constvars.ResponseStatusNotStarted
		response.Responses = []models.QuestionResponse{}
		response.Timeline = []models.TimelineEvent{}
		response.SetCreatedAtUpdatedAt()
		event = response.AppendTimeline(constvars.ResponseStatusNotStarted, constvars.TimelineMessageCreated)

		if err := uc.ResponseRepository.Insert(ctx, *response); err != nil {
			if errors.Is(err, contracts.ErrDuplicateRecord) {
				return exceptions.ErrResponseAlreadyExists(err, response.AssessmentID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.CreateAssessmentResponse error creating response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, response.AssessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishStatusChange(ctx, response, event)

	uc.Log.Info("assessmentResponseUsecase.CreateAssessmentResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, response.ID),
		zap.String(constvars.LoggingAssessmentIDKey, response.AssessmentID),
	)
	return response, nil
}

// UpdateAssessmentResponse merges the non-lifecycle fields of payload. A status
// in the payload may only move the response forward.
func (uc *assessmentResponseUsecase) UpdateAssessmentResponse(ctx context.Context, responseID string, payload []byte) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.UpdateAssessmentResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)

	statusRequest, err := parseStatusRequest(payload)
	if err != nil {
		return nil, err
	}

	var (
		updated *models.AssessmentResponse
		event   *models.TimelineEvent
	)
	lockKey := utils.GenerateLockKey(constvars.LockKeyResponseFormat, responseID)
	err = uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		existing, err := uc.ResponseRepository.FindByID(ctx, responseID)
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrResponseNotFound(nil, responseID)
		}

		merged, err := utils.MergeFields(existing, payload, updateIgnoredFields...)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		merged.EnsureLists()

		target := statusRequest.Status
		if target != "" && target != existing.Status {
			if utils.ResponseStatusRank(target) < utils.ResponseStatusRank(existing.Status) {
				return exceptions.ErrInvalidStatusTransition(nil, existing.Status, target)
			}
			if target == constvars.ResponseStatusSubmitted {
				if err := uc.checkSubmitPolicy(ctx, merged); err != nil {
					return err
				}
			}
			merged.Status = target
			appended := merged.AppendTimeline(target, timelineMessage(target))
			if target == constvars.ResponseStatusSubmitted {
				merged.SubmittedAt = appended.Date
			}
			event = &appended
		}
		merged.SetUpdatedAt()

		if err := uc.ResponseRepository.Replace(ctx, *merged); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrResponseNotFound(err, responseID)
			}
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.UpdateAssessmentResponse error updating response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResponseIDKey, responseID),
			zap.Error(err),
		)
		return nil, err
	}

	if event != nil {
		uc.publishStatusChange(ctx, updated, *event)
		uc.syncAssessmentStatus(ctx, updated.AssessmentID, updated.Status)
	}

	uc.Log.Info("assessmentResponseUsecase.UpdateAssessmentResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
		zap.String(constvars.LoggingStatusKey, updated.Status),
	)
	return updated, nil
}

// UpsertQuestionResponse records one answer. The first answer moves a
// response from Not Started to In Progress.
func (uc *assessmentResponseUsecase) UpsertQuestionResponse(ctx context.Context, responseID string, request *requests.UpsertQuestionResponse) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.UpsertQuestionResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
		zap.String(constvars.LoggingSectionIDKey, request.SectionID),
		zap.String(constvars.LoggingQuestionIDKey, request.QuestionID),
	)

	var (
		updated *models.AssessmentResponse
		event   *models.TimelineEvent
	)
	lockKey := utils.GenerateLockKey(constvars.LockKeyResponseFormat, responseID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		response, err := uc.ResponseRepository.FindByID(ctx, responseID)
		if err != nil {
			return err
		}
		if response == nil {
			return exceptions.ErrResponseNotFound(nil, responseID)
		}

		response.EnsureLists()
		response.UpsertAnswer(request.SectionID, request.QuestionID, request.Value)
		if response.Status == constvars.ResponseStatusNotStarted {
			response.Status = constvars.ResponseStatusInProgress
			appended := response.AppendTimeline(constvars.ResponseStatusInProgress, constvars.TimelineMessageStarted)
			event = &appended
		}
		response.SetUpdatedAt()

		if err := uc.ResponseRepository.Replace(ctx, *response); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrResponseNotFound(err, responseID)
			}
			return err
		}
		updated = response
		return nil
	})
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.UpsertQuestionResponse error saving answer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResponseIDKey, responseID),
			zap.Error(err),
		)
		return nil, err
	}

	if event != nil {
		uc.publishStatusChange(ctx, updated, *event)
		uc.syncAssessmentStatus(ctx, updated.AssessmentID, updated.Status)
	}

	uc.Log.Info("assessmentResponseUsecase.UpsertQuestionResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
		zap.Int(constvars.LoggingCountKey, len(updated.Responses)),
	)
	return updated, nil
}

func (uc *assessmentResponseUsecase) SubmitAssessmentResponse(ctx context.Context, responseID string) (*models.AssessmentResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.SubmitAssessmentResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)

	var (
		submitted *models.AssessmentResponse
		event     models.TimelineEvent
	)
	lockKey := utils.GenerateLockKey(constvars.LockKeyResponseFormat, responseID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		response, err := uc.ResponseRepository.FindByID(ctx, responseID)
		if err != nil {
			return err
		}
		if response == nil {
			return exceptions.ErrResponseNotFound(nil, responseID)
		}
		if err := uc.checkSubmitPolicy(ctx, response); err != nil {
			return err
		}

		response.EnsureLists()
		response.Status = constvars.ResponseStatusSubmitted
		event = response.AppendTimeline(constvars.ResponseStatusSubmitted, constvars.TimelineMessageSubmitted)
		response.SubmittedAt = event.Date
		response.SetUpdatedAt()

		if err := uc.ResponseRepository.Replace(ctx, *response); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrResponseNotFound(err, responseID)
			}
			return err
		}
		submitted = response
		return nil
	})
	if err != nil {
		uc.Log.Error("assessmentResponseUsecase.SubmitAssessmentResponse error submitting response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResponseIDKey, responseID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishStatusChange(ctx, submitted, event)
	uc.syncAssessmentStatus(ctx, submitted.AssessmentID, submitted.Status)

	uc.Log.Info("assessmentResponseUsecase.SubmitAssessmentResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)
	return submitted, nil
}

func (uc *assessmentResponseUsecase) FindAssessmentResponseProgress(ctx context.Context, responseID string) (*models.ResponseProgress, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentResponseUsecase.FindAssessmentResponseProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, responseID),
	)

	response, err := uc.FindAssessmentResponseByID(ctx, responseID)
	if err != nil {
		return nil, err
	}

	template, err := uc.findTemplate(ctx, response)
	if err != nil {
		return nil, err
	}

	progress := models.ComputeProgress(template, response)
	return &progress, nil
}

// checkSubmitPolicy enforces APP_SUBMIT_POLICY. Under require_answers every
// required question of the assessment's template needs an answer.
func (uc *assessmentResponseUsecase) checkSubmitPolicy(ctx context.Context, response *models.AssessmentResponse) error {
	if uc.InternalConfig.App.SubmitPolicy != constvars.SubmitPolicyRequireAnswers {
		return nil
	}

	template, err := uc.findTemplate(ctx, response)
	if err != nil {
		return err
	}
	progress := models.ComputeProgress(template, response)
	if len(progress.MissingRequired) > 0 {
		return exceptions.ErrMissingRequiredAnswers(nil, progress.MissingRequired)
	}
	return nil
}

// findTemplate resolves the template through the response's assessment. A
// missing assessment or template yields nil.
func (uc *assessmentResponseUsecase) findTemplate(ctx context.Context, response *models.AssessmentResponse) (*models.Template, error) {
	if response.AssessmentID == "" {
		return nil, nil
	}
	assessment, err := uc.AssessmentRepository.FindByID(ctx, response.AssessmentID)
	if err != nil || assessment == nil || assessment.TemplateID == "" {
		return nil, err
	}
	return uc.TemplateRepository.FindByID(ctx, assessment.TemplateID)
}

func (uc *assessmentResponseUsecase) publishStatusChange(ctx context.Context, response *models.AssessmentResponse, event models.TimelineEvent) {
	err := uc.EventPublisher.PublishStatusChange(ctx, models.NewStatusChangeEvent(response, event))
	if err != nil {
		uc.Log.Warn("assessmentResponseUsecase.publishStatusChange error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingResponseIDKey, response.ID),
			zap.String(constvars.LoggingStatusKey, event.Status),
			zap.Error(err),
		)
	}
}

// syncAssessmentStatus mirrors the response status onto its assessment.
// Failures are logged only.
func (uc *assessmentResponseUsecase) syncAssessmentStatus(ctx context.Context, assessmentID, responseStatus string) {
	if assessmentID == "" {
		return
	}

	lockKey := utils.GenerateEntityLockKey(constvars.CollectionAssessments, assessmentID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
		if err != nil || assessment == nil {
			return err
		}

		target := assessmentStatusFor(assessment.Status, responseStatus)
		if target == "" {
			return nil
		}
		assessment.Status = target
		assessment.SetUpdatedAt()
		return uc.AssessmentRepository.Replace(ctx, *assessment)
	})
	if err != nil {
		uc.Log.Warn("assessmentResponseUsecase.syncAssessmentStatus error updating assessment",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
	}
}

// assessmentStatusFor returns the assessment status implied by a response
// status, or "" when the assessment should stay as it is.
func assessmentStatusFor(current, responseStatus string) string {
	switch responseStatus {
	case constvars.ResponseStatusInProgress:
		switch current {
		case "", constvars.AssessmentStatusDraft, constvars.AssessmentStatusSent:
			return constvars.AssessmentStatusInProgress
		}
	case constvars.ResponseStatusSubmitted:
		if current != constvars.AssessmentStatusCompleted {
			return constvars.AssessmentStatusCompleted
		}
	}
	return ""
}

func timelineMessage(status string) string {
	switch status {
	case constvars.ResponseStatusInProgress:
		return constvars.TimelineMessageStarted
	case constvars.ResponseStatusSubmitted:
		return constvars.TimelineMessageSubmitted
	}
	return constvars.TimelineMessageCreated
}

// parseStatusRequest reads the optional lifecycle status out of an update
// payload. A non-string status is kept raw so validation rejects it.
func parseStatusRequest(payload []byte) (*requests.UpdateResponseStatus, error) {
	request := new(requests.UpdateResponseStatus)
	if len(bytes.TrimSpace(payload)) == 0 {
		return request, nil
	}
	if !gjson.ValidBytes(payload) {
		return nil, exceptions.ErrCannotParseJSON(errors.New("payload is not valid JSON"))
	}

	status := gjson.GetBytes(payload, "status")
	switch status.Type {
	case gjson.Null:
		return request, nil
	case gjson.String:
		request.Status = status.String()
	default:
		request.Status = status.Raw
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return request, nil
}
