package assessments

import (
	"context"
	"errors"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentRepository contracts.Repository[models.Assessment]
	ResponseRepository   contracts.Repository[models.AssessmentResponse]
	Transactor           contracts.Transactor
	Locker               contracts.KeyedLocker
	Log                  *zap.Logger
}

func NewAssessmentUsecase(
	repositories *contracts.Repositories,
	locker contracts.KeyedLocker,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		AssessmentRepository: repositories.Assessments,
		ResponseRepository:   repositories.Responses,
		Transactor:           repositories.Transactor,
		Locker:               locker,
		Log:                  logger,
	}
}

func (uc *assessmentUsecase) FindAll(ctx context.Context) ([]models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	assessments, err := uc.AssessmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return assessments, nil
}

func (uc *assessmentUsecase) FindAssessmentByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindAssessmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	assessment, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAssessmentByID error fetching assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}
	return assessment, nil
}

func (uc *assessmentUsecase) FindAssessmentsByAccountID(ctx context.Context, accountID string) ([]models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindAssessmentsByAccountID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	assessments, err := uc.AssessmentRepository.FindByReference(ctx, accountID)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAssessmentsByAccountID error fetching assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return nil, err
	}
	return assessments, nil
}

func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, payload []byte) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	assessment, err := utils.MergeFields(new(models.Assessment), payload, models.ImmutableFields...)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	assessment.ID = utils.GenerateID()
	if assessment.Status == "" {
		assessment.Status = constvars.AssessmentStatusDraft
	}
	assessment.SetCreatedAtUpdatedAt()

	if err := uc.AssessmentRepository.Insert(ctx, *assessment); err != nil {
		uc.Log.Error("assessmentUsecase.CreateAssessment error inserting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
		zap.String(constvars.LoggingTemplateIDKey, assessment.TemplateID),
	)
	return assessment, nil
}

func (uc *assessmentUsecase) UpdateAssessment(ctx context.Context, assessmentID string, payload []byte) (*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.UpdateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	var updated *models.Assessment
	lockKey := utils.GenerateEntityLockKey(constvars.CollectionAssessments, assessmentID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		existing, err := uc.AssessmentRepository.FindByID(ctx, assessmentID)
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrAssessmentNotFound(nil, assessmentID)
		}

		merged, err := utils.MergeFields(existing, payload, models.ImmutableFields...)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		merged.SetUpdatedAt()

		if err := uc.AssessmentRepository.Replace(ctx, *merged); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrAssessmentNotFound(err, assessmentID)
			}
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		uc.Log.Error("assessmentUsecase.UpdateAssessment error updating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.UpdateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.String(constvars.LoggingStatusKey, updated.Status),
	)
	return updated, nil
}

// DeleteAssessmentByID removes the assessment together with its response.
func (uc *assessmentUsecase) DeleteAssessmentByID(ctx context.Context, assessmentID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.DeleteAssessmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	// Response creation holds the same key, so no response can be added
	// between the delete and its cascade.
	var cascaded int
	lockKey := utils.GenerateLockKey(constvars.LockKeyAssessmentResponseFormat, assessmentID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		return uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			deleted, err := uc.AssessmentRepository.DeleteByID(ctx, assessmentID)
			if err != nil {
				return err
			}
			if !deleted {
				return exceptions.ErrAssessmentNotFound(nil, assessmentID)
			}

			return utils.LogOperation(uc.Log, "assessmentUsecase.DeleteAssessmentByID cascade to responses", requestID, func() error {
				var err error
				cascaded, err = uc.ResponseRepository.DeleteByReference(ctx, assessmentID)
				return err
			})
		})
	})
	if err != nil {
		uc.Log.Error("assessmentUsecase.DeleteAssessmentByID error deleting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("assessmentUsecase.DeleteAssessmentByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
		zap.Int(constvars.LoggingCascadeDeletedKey, cascaded),
	)
	return nil
}
