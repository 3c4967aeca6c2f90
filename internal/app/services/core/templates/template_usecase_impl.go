package templates

import (
	"context"

	"brm-service/internal/app/contracts"
	"brm-service/internal/app/models"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"
	"brm-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateRepository contracts.Repository[models.Template]
	Log                *zap.Logger
}

func NewTemplateUsecase(
	repositories *contracts.Repositories,
	logger *zap.Logger,
) contracts.TemplateUsecase {
	return &templateUsecase{
		TemplateRepository: repositories.Templates,
		Log:                logger,
	}
}

func (uc *templateUsecase) FindAll(ctx context.Context) ([]models.Template, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("templateUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	templates, err := uc.TemplateRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("templateUsecase.FindAll error fetching templates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return templates, nil
}

func (uc *templateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("templateUsecase.FindTemplateByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, templateID),
	)

	template, err := uc.TemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(nil, templateID)
	}
	return template, nil
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, payload []byte) (*models.Template, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("templateUsecase.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	template, err := utils.MergeFields(new(models.Template), payload, models.ImmutableFields...)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	template.ID = utils.GenerateID()
	template.AssignMissingIDs()
	template.SetCreatedAtUpdatedAt()

	if err := uc.TemplateRepository.Insert(ctx, *template); err != nil {
		uc.Log.Error("templateUsecase.CreateTemplate error inserting template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("templateUsecase.CreateTemplate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTemplateIDKey, template.ID),
		zap.Int(constvars.LoggingCountKey, len(template.Sections)),
	)
	return template, nil
}

// SeedTemplates inserts templates only into an empty collection and reports
// how many were written. Seed ids are kept so answers keyed by them stay valid.
func (uc *templateUsecase) SeedTemplates(ctx context.Context, templates []models.Template) (int, error) {
	existing, err := uc.TemplateRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		uc.Log.Info("templateUsecase.SeedTemplates skipped, collection not empty",
			zap.Int(constvars.LoggingCountKey, len(existing)),
		)
		return 0, nil
	}

	for _, template := range templates {
		if template.ID == "" {
			template.ID = utils.GenerateID()
		}
		template.AssignMissingIDs()
		template.SetCreatedAtUpdatedAt()
		if err := uc.TemplateRepository.Insert(ctx, template); err != nil {
			uc.Log.Error("templateUsecase.SeedTemplates error inserting template",
				zap.String(constvars.LoggingTemplateIDKey, template.ID),
				zap.Error(err),
			)
			return 0, err
		}
	}

	uc.Log.Info("templateUsecase.SeedTemplates succeeded",
		zap.Int(constvars.LoggingCountKey, len(templates)),
	)
	return len(templates), nil
}
