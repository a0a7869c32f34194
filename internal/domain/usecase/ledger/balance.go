package ledger

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
)

// Debit spends credits. It returns false, leaving the balance untouched, when the
// balance does not cover amount or the user has no account.
func (s *Service) Debit(ctx context.Context, userID string, amount int64) (bool, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return false, err
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return false, err
	}

	debited, err := s.accountRepo.Debit(ctx, userID, amount)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			s.logger.Warn("Debit requested for unknown account", map[string]any{
				"user_id": userID,
				"amount":  amount,
			})
			return false, nil
		}
		s.logger.Error("Debit failed", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return false, err
	}

	if !debited {
		s.logger.Info("Debit rejected, insufficient credits", map[string]any{
			"user_id": userID,
			"amount":  amount,
		})
		return false, nil
	}

	s.adjustMirrorBalance(ctx, userID, -amount)
	s.logger.Debug("Credits debited", map[string]any{
		"user_id": userID,
		"amount":  amount,
	})
	return true, nil
}

// Credit adds credits with an atomic increment and returns the balance read back afterwards.
// If the increment committed but the read-back failed, the mirror entry is dropped and
// BalanceUnknown is returned with a nil error.
func (s *Service) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return 0, err
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return 0, err
	}

	if err := s.accountRepo.Increment(ctx, userID, amount); err != nil {
		s.logger.Error("Credit failed", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		return 0, err
	}

	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Credit applied but balance could not be re-read", map[string]any{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		})
		s.invalidateMirror(ctx, userID)
		return usecase.BalanceUnknown, nil
	}

	s.setMirrorBalance(ctx, userID, account.Credits())
	s.logger.Info("Credits added", map[string]any{
		"user_id": userID,
		"amount":  amount,
		"balance": account.Credits(),
	})
	return account.Credits(), nil
}
