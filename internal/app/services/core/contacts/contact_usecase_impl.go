package contacts

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

type contactUsecase struct {
	ContactRepository contracts.Repository[models.Contact]
	Locker            contracts.KeyedLocker
	Log               *zap.Logger
}

func NewContactUsecase(
	repositories *contracts.Repositories,
	locker contracts.KeyedLocker,
	logger *zap.Logger,
) contracts.ContactUsecase {
	return &contactUsecase{
		ContactRepository: repositories.Contacts,
		Locker:            locker,
		Log:               logger,
	}
}

func (uc *contactUsecase) FindAll(ctx context.Context) ([]models.Contact, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	contacts, err := uc.ContactRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("contactUsecase.FindAll error fetching contacts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("contactUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(contacts)),
	)
	return contacts, nil
}

func (uc *contactUsecase) FindContactByID(ctx context.Context, contactID string) (*models.Contact, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.FindContactByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactIDKey, contactID),
	)

	contact, err := uc.ContactRepository.FindByID(ctx, contactID)
	if err != nil {
		uc.Log.Error("contactUsecase.FindContactByID error fetching contact",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContactIDKey, contactID),
			zap.Error(err),
		)
		return nil, err
	}
	if contact == nil {
		return nil, exceptions.ErrContactNotFound(nil, contactID)
	}
	return contact, nil
}

// FindContactsByAccountID lists the contacts of an account. An unknown
// account simply has no contacts.
func (uc *contactUsecase) FindContactsByAccountID(ctx context.Context, accountID string) ([]models.Contact, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.FindContactsByAccountID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	contacts, err := uc.ContactRepository.FindByReference(ctx, accountID)
	if err != nil {
		uc.Log.Error("contactUsecase.FindContactsByAccountID error fetching contacts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("contactUsecase.FindContactsByAccountID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
		zap.Int(constvars.LoggingCountKey, len(contacts)),
	)
	return contacts, nil
}

func (uc *contactUsecase) CreateContact(ctx context.Context, payload []byte) (*models.Contact, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.CreateContact called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	contact, err := utils.MergeFields(new(models.Contact), payload, models.ImmutableFields...)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	contact.ID = utils.GenerateID()
	contact.SetCreatedAtUpdatedAt()

	if err := uc.ContactRepository.Insert(ctx, *contact); err != nil {
		uc.Log.Error("contactUsecase.CreateContact error inserting contact",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("contactUsecase.CreateContact succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactIDKey, contact.ID),
		zap.String(constvars.LoggingAccountIDKey, contact.AccountID),
	)
	return contact, nil
}

func (uc *contactUsecase) UpdateContact(ctx context.Context, contactID string, payload []byte) (*models.Contact, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.UpdateContact called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactIDKey, contactID),
	)

	var updated *models.Contact
	lockKey := utils.GenerateEntityLockKey(constvars.CollectionContacts, contactID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		existing, err := uc.ContactRepository.FindByID(ctx, contactID)
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrContactNotFound(nil, contactID)
		}

		merged, err := utils.MergeFields(existing, payload, models.ImmutableFields...)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		merged.SetUpdatedAt()

		if err := uc.ContactRepository.Replace(ctx, *merged); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrContactNotFound(err, contactID)
			}
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		uc.Log.Error("contactUsecase.UpdateContact error updating contact",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContactIDKey, contactID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("contactUsecase.UpdateContact succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactIDKey, contactID),
	)
	return updated, nil
}

func (uc *contactUsecase) DeleteContactByID(ctx context.Context, contactID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.DeleteContactByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContactIDKey, contactID),
	)

	deleted, err := uc.ContactRepository.DeleteByID(ctx, contactID)
	if err != nil {
		uc.Log.Error("contactUsecase.DeleteContactByID error deleting contact",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingContactIDKey, contactID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrContactNotFound(nil, contactID)
	}
	return nil
}
