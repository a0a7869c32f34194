package persistence

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// PaymentRepository stores the per-user payment log
type PaymentRepository interface {
	// FindSucceeded returns the succeeded payment with the given ID, or nil
	FindSucceeded(ctx context.Context, userID, paymentID string) (*entity.Payment, error)

	// FindByPaymentID returns the payment with the given ID in any status, or nil
	FindByPaymentID(ctx context.Context, userID, paymentID string) (*entity.Payment, error)

	// Create inserts a payment. A duplicate (user, payment ID) pair yields ErrPaymentAlreadyProcessed.
	Create(ctx context.Context, payment *entity.Payment) error

	// ListByUser returns the user's payments, most recent first
	ListByUser(ctx context.Context, userID string) ([]entity.Payment, error)
}
