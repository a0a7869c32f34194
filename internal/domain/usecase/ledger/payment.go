package ledger

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
)

// IsPaymentRecorded returns the user's succeeded payment with the given ID, or nil
func (s *Service) IsPaymentRecorded(ctx context.Context, userID, paymentID string) (*entity.Payment, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(paymentID) == "" {
		return nil, errs.ErrInvalidPayment
	}

	return s.paymentRepo.FindSucceeded(ctx, userID, paymentID)
}

// RecordPayment appends a payment to the user's log at most once.
// When the payment ID is already present, in any status, the existing record is
// returned with created set to false and nothing is written.
func (s *Service) RecordPayment(
	ctx context.Context,
	userID, paymentID string,
	amount int64,
	status string,
) (*entity.Payment, bool, error) {
	payment, err := entity.NewPayment(userID, entity.PaymentDescriptor{
		ID:     paymentID,
		Amount: amount,
		Status: status,
	}, s.timeProvider)
	if err != nil {
		return nil, false, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	payments := s.uow.GetPaymentRepository(txCtx)

	existing, err := payments.FindByPaymentID(txCtx, userID, paymentID)
	if err != nil {
		s.rollback(txCtx)
		return nil, false, err
	}
	if existing != nil {
		s.rollback(txCtx)
		s.logger.Info("Payment already recorded", map[string]any{
			"user_id":    userID,
			"payment_id": paymentID,
		})
		return existing, false, nil
	}

	if err := payments.Create(txCtx, payment); err != nil {
		s.rollback(txCtx)
		if !errs.IsPaymentAlreadyProcessedError(err) {
			s.logger.Error("Failed to record payment", map[string]any{
				"user_id":    userID,
				"payment_id": paymentID,
				"error":      err.Error(),
			})
			return nil, false, err
		}

		// A concurrent request inserted the same payment between our check and insert
		s.logger.Info("Payment recorded concurrently by another request", map[string]any{
			"user_id":    userID,
			"payment_id": paymentID,
		})
		existing, err = s.paymentRepo.FindByPaymentID(ctx, userID, paymentID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit payment record", map[string]any{
			"user_id":    userID,
			"payment_id": paymentID,
			"error":      err.Error(),
		})
		return nil, false, err
	}

	if err := s.mirror.AddPayment(ctx, userID, *payment); err != nil {
		s.logMirrorFailure("add_payment", userID, err)
	}

	s.logger.Info("Payment recorded", map[string]any{
		"user_id":    userID,
		"payment_id": paymentID,
		"amount":     amount,
		"status":     status,
	})
	return payment, true, nil
}

// ListPayments returns the user's payments newest first and refreshes the mirror with them
func (s *Service) ListPayments(ctx context.Context, userID string) ([]entity.Payment, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entity.SortPaymentsByCreatedAtDesc(payments)

	if err := s.mirror.SetPayments(ctx, userID, payments); err != nil {
		s.logMirrorFailure("set_payments", userID, err)
	}
	return payments, nil
}

func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Warn("Failed to roll back payment transaction", map[string]any{
			"error": err.Error(),
		})
	}
}
