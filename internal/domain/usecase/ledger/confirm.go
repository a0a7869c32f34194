package ledger

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

// ConfirmPayment reconciles a verified payment with the ledger: the payment is
// recorded once and credited once, however many times it is confirmed.
//
// A payment that is recorded but whose credit fails yields a
// *errs.PaymentRecordedNotCreditedError. It is not retried here because a blind
// retry could credit twice; support resolves it from the payment ID.
//
// Recording and crediting ignore cancellation of ctx: a client that disconnects after
// the record commits must not strand the payment without its credits.
func (s *Service) ConfirmPayment(
	ctx context.Context,
	userID string,
	descriptor entity.PaymentDescriptor,
) (entity.ConfirmationResult, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return entity.ConfirmationResult{}, err
	}
	if err := descriptor.Validate(); err != nil {
		return entity.ConfirmationResult{}, err
	}

	if !descriptor.IsSucceeded() {
		s.logger.Warn("Payment confirmation rejected", map[string]any{
			"user_id":    userID,
			"payment_id": descriptor.ID,
			"status":     descriptor.Status,
		})
		return entity.ConfirmationResult{Outcome: entity.OutcomeValidationFailed}, nil
	}

	existing, err := s.IsPaymentRecorded(ctx, userID, descriptor.ID)
	if err != nil {
		return entity.ConfirmationResult{}, err
	}
	if existing != nil {
		return entity.ConfirmationResult{
			Outcome: entity.OutcomeAlreadyProcessed,
			Payment: existing,
		}, nil
	}

	credits, err := s.config.Bonus.CreditsFor(descriptor.Amount)
	if err != nil {
		return entity.ConfirmationResult{}, err
	}

	ctx = context.WithoutCancel(ctx)

	payment, created, err := s.RecordPayment(ctx, userID, descriptor.ID, descriptor.Amount, descriptor.Status)
	if err != nil {
		return entity.ConfirmationResult{}, err
	}
	if !created {
		return entity.ConfirmationResult{
			Outcome: entity.OutcomeAlreadyProcessed,
			Payment: payment,
		}, nil
	}

	balance, err := s.Credit(ctx, userID, credits)
	if err != nil {
		failure := &errs.PaymentRecordedNotCreditedError{
			PaymentID: payment.ID,
			UserID:    userID,
			Credits:   credits,
			Err:       err,
		}
		s.logger.Error("Payment recorded but credits not added", failure.LogFields())
		s.publish(ctx, service.LedgerEvent{
			Type:      service.EventPaymentCreditFailed,
			UserID:    userID,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Credits:   credits,
			Error:     err.Error(),
		})
		return entity.ConfirmationResult{Payment: payment}, failure
	}

	s.publish(ctx, service.LedgerEvent{
		Type:      service.EventPaymentCredited,
		UserID:    userID,
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Credits:   credits,
		Balance:   balance,
	})

	return entity.ConfirmationResult{
		Outcome:      entity.OutcomeCredited,
		Payment:      payment,
		CreditsAdded: credits,
		Balance:      balance,
	}, nil
}

// IsRecordedNotCredited extracts the partial failure from a confirmation error
func IsRecordedNotCredited(err error) (*errs.PaymentRecordedNotCreditedError, bool) {
	var failure *errs.PaymentRecordedNotCreditedError
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
