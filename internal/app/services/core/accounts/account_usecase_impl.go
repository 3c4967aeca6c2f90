package accounts

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

type accountUsecase struct {
	AccountRepository contracts.Repository[models.Account]
	ContactRepository contracts.Repository[models.Contact]
	Transactor        contracts.Transactor
	Locker            contracts.KeyedLocker
	Log               *zap.Logger
}

func NewAccountUsecase(
	repositories *contracts.Repositories,
	locker contracts.KeyedLocker,
	logger *zap.Logger,
) contracts.AccountUsecase {
	return &accountUsecase{
		AccountRepository: repositories.Accounts,
		ContactRepository: repositories.Contacts,
		Transactor:        repositories.Transactor,
		Locker:            locker,
		Log:               logger,
	}
}

func (uc *accountUsecase) FindAll(ctx context.Context) ([]models.Account, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	accounts, err := uc.AccountRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("accountUsecase.FindAll error fetching accounts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("accountUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(accounts)),
	)
	return accounts, nil
}

func (uc *accountUsecase) FindAccountByID(ctx context.Context, accountID string) (*models.Account, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.FindAccountByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	account, err := uc.AccountRepository.FindByID(ctx, accountID)
	if err != nil {
		uc.Log.Error("accountUsecase.FindAccountByID error fetching account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrAccountNotFound(nil, accountID)
	}

	uc.Log.Info("accountUsecase.FindAccountByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	return account, nil
}

func (uc *accountUsecase) CreateAccount(ctx context.Context, payload []byte) (*models.Account, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.CreateAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := utils.MergeFields(new(models.Account), payload, models.ImmutableFields...)
	if err != nil {
		uc.Log.Error("accountUsecase.CreateAccount error parsing payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	account.ID = utils.GenerateID()
	account.SetCreatedAtUpdatedAt()

	if err := uc.AccountRepository.Insert(ctx, *account); err != nil {
		uc.Log.Error("accountUsecase.CreateAccount error inserting account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("accountUsecase.CreateAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return account, nil
}

func (uc *accountUsecase) UpdateAccount(ctx context.Context, accountID string, payload []byte) (*models.Account, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.UpdateAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	var updated *models.Account
	lockKey := utils.GenerateEntityLockKey(constvars.CollectionAccounts, accountID)
	err := uc.Locker.WithLock(ctx, lockKey, func(ctx context.Context) error {
		existing, err := uc.AccountRepository.FindByID(ctx, accountID)
		if err != nil {
			return err
		}
		if existing == nil {
			return exceptions.ErrAccountNotFound(nil, accountID)
		}

		merged, err := utils.MergeFields(existing, payload, models.ImmutableFields...)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}
		merged.SetUpdatedAt()

		if err := uc.AccountRepository.Replace(ctx, *merged); err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return exceptions.ErrAccountNotFound(err, accountID)
			}
			return err
		}
		updated = merged
		return nil
	})
	if err != nil {
		uc.Log.Error("accountUsecase.UpdateAccount error updating account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("accountUsecase.UpdateAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	return updated, nil
}

// DeleteAccountByID removes the account and every contact that references it.
func (uc *accountUsecase) DeleteAccountByID(ctx context.Context, accountID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.DeleteAccountByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)

	var cascaded int
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		deleted, err := uc.AccountRepository.DeleteByID(ctx, accountID)
		if err != nil {
			return err
		}
		if !deleted {
			return exceptions.ErrAccountNotFound(nil, accountID)
		}

		return utils.LogOperation(uc.Log, "accountUsecase.DeleteAccountByID cascade to contacts", requestID, func() error {
			var err error
			cascaded, err = uc.ContactRepository.DeleteByReference(ctx, accountID)
			return err
		})
	})
	if err != nil {
		uc.Log.Error("accountUsecase.DeleteAccountByID error deleting account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAccountIDKey, accountID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("accountUsecase.DeleteAccountByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
		zap.Int(constvars.LoggingCascadeDeletedKey, cascaded),
	)
	return nil
}
