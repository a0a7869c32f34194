package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	retry           RetryFunc
}

// NewAccountRepository creates a new AccountRepository instance.
// A nil retry runs every statement once.
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, retry RetryFunc) *AccountRepository {
	if retry == nil {
		retry = NoRetry
	}
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		retry:           retry,
	}
}

func accountToEntity(m *model.Account) *entity.Account {
	return entity.RestoreAccount(m.UserID, m.Credits, m.CreatedAt, m.UpdatedAt)
}

// GetByID retrieves an account by user ID
func (r *AccountRepository) GetByID(ctx context.Context, userID string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Debug("Account not found", map[string]any{
				"user_id": userID,
			})
			return nil, errs.ErrUserNotFound
		}
		return nil, mapStoreError(r.errorClassifier, r.logger, "getting account", userID, result.Error)
	}

	return accountToEntity(&accountModel), nil
}

// Create inserts the account unless one already exists for the user
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, bool, error) {
	accountModel := model.Account{
		UserID:    account.UserID,
		Credits:   account.Credits(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&accountModel)
	if result.Error != nil {
		return nil, false, mapStoreError(r.errorClassifier, r.logger, "creating account", account.UserID, result.Error)
	}

	if result.RowsAffected == 0 {
		existing, err := r.GetByID(ctx, account.UserID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	r.logger.Info("Account created", map[string]any{
		"user_id": account.UserID,
		"credits": account.Credits(),
	})
	return nil, true, nil
}

// Debit takes amount from the balance under a row lock.
// It reports false, leaving the row untouched, when the balance is too low.
func (r *AccountRepository) Debit(ctx context.Context, userID string, amount int64) (bool, error) {
	var debited bool

	err := r.retry(ctx, func() error {
		debited = false
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var accountModel model.Account
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("user_id = ?", userID).
				Take(&accountModel).Error; err != nil {
				return err
			}

			if accountModel.Credits < amount {
				r.logger.Debug("Debit refused", map[string]any{
					"user_id":   userID,
					"requested": amount,
					"available": accountModel.Credits,
				})
				return nil
			}

			if err := tx.Model(&model.Account{}).
				Where("user_id = ?", userID).
				Updates(map[string]any{
					"credits":    gorm.Expr("credits - ?", amount),
					"updated_at": r.timeProvider.Now(),
				}).Error; err != nil {
				return err
			}

			debited = true
			return nil
		})
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.ErrUserNotFound
		}
		return false, mapStoreError(r.errorClassifier, r.logger, "debiting credits", userID, err)
	}

	return debited, nil
}

// Increment adds amount to the balance in a single UPDATE
func (r *AccountRepository) Increment(ctx context.Context, userID string, amount int64) error {
	err := r.retry(ctx, func() error {
		result := r.db.WithContext(ctx).Model(&model.Account{}).
			Where("user_id = ?", userID).
			Updates(map[string]any{
				"credits":    gorm.Expr("credits + ?", amount),
				"updated_at": r.timeProvider.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("Account not found during increment", map[string]any{
				"user_id": userID,
			})
			return errs.ErrUserNotFound
		}
		return mapStoreError(r.errorClassifier, r.logger, "incrementing credits", userID, err)
	}

	return nil
}
