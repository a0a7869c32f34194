package usecase

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// BalanceUnknown is reported by Credit when the increment committed but the
// balance could not be re-read afterwards
const BalanceUnknown int64 = -1

// LedgerUseCase is the credit ledger: balances, the payment log and payment confirmation
type LedgerUseCase interface {
	EnsureAccount(ctx context.Context, userID string) (*entity.Account, error)
	GetBalance(ctx context.Context, userID string) (int64, error)

	// Debit returns false when the balance does not cover amount or the account is missing
	Debit(ctx context.Context, userID string, amount int64) (bool, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	IsPaymentRecorded(ctx context.Context, userID, paymentID string) (*entity.Payment, error)
	RecordPayment(ctx context.Context, userID, paymentID string, amount int64, status string) (*entity.Payment, bool, error)
	ConfirmPayment(ctx context.Context, userID string, descriptor entity.PaymentDescriptor) (entity.ConfirmationResult, error)

	ListPayments(ctx context.Context, userID string) ([]entity.Payment, error)
	Snapshot(ctx context.Context, userID string) (entity.AccountSnapshot, error)
}
