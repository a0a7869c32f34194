package ledger

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// EnsureAccount creates the user's account with the default balance, or loads it if it exists
func (s *Service) EnsureAccount(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := entity.NewAccount(userID, s.config.DefaultCredits, s.timeProvider)
	if err != nil {
		return nil, err
	}

	existing, created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		s.logger.Error("Failed to ensure account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if created {
		s.logger.Info("Account created", map[string]any{
			"user_id": userID,
			"credits": account.Credits(),
		})
	} else {
		account = existing
	}

	s.setMirrorBalance(ctx, userID, account.Credits())
	return account, nil
}

// GetBalance reads the authoritative balance and refreshes the mirror with it
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return 0, err
	}

	account, err := s.accountRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.setMirrorBalance(ctx, userID, account.Credits())
	return account.Credits(), nil
}

// Snapshot returns the display view of the account, loading from the store what the mirror lacks
func (s *Service) Snapshot(ctx context.Context, userID string) (entity.AccountSnapshot, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return entity.AccountSnapshot{}, err
	}

	credits, ok, err := s.mirror.Balance(ctx, userID)
	if err != nil {
		s.logMirrorFailure("read_balance", userID, err)
		ok = false
	}
	if !ok {
		if credits, err = s.GetBalance(ctx, userID); err != nil {
			return entity.AccountSnapshot{}, err
		}
	}

	payments, ok, err := s.mirror.Payments(ctx, userID)
	if err != nil {
		s.logMirrorFailure("read_payments", userID, err)
		ok = false
	}
	if !ok {
		if payments, err = s.ListPayments(ctx, userID); err != nil {
			return entity.AccountSnapshot{}, err
		}
	}

	return entity.AccountSnapshot{
		UserID:   userID,
		Credits:  credits,
		Payments: payments,
	}, nil
}
