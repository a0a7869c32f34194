package service

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// Mirror is the display copy of account state. It is never authoritative:
// the ledger store wins whenever the two disagree.
type Mirror interface {
	// SetBalance replaces the mirrored balance
	SetBalance(ctx context.Context, userID string, credits int64) error

	// AdjustBalance applies delta to a mirrored balance. Users without a
	// mirrored balance are left alone.
	AdjustBalance(ctx context.Context, userID string, delta int64) error

	// Balance returns the mirrored balance and whether one is present
	Balance(ctx context.Context, userID string) (int64, bool, error)

	// SetPayments replaces the mirrored payment list
	SetPayments(ctx context.Context, userID string, payments []entity.Payment) error

	// AddPayment inserts a payment keeping the list ordered by creation time, newest first.
	// Users without a mirrored payment list are left alone.
	AddPayment(ctx context.Context, userID string, payment entity.Payment) error

	// Payments returns the mirrored payment list and whether one is present
	Payments(ctx context.Context, userID string) ([]entity.Payment, bool, error)

	// Invalidate drops everything mirrored for the user
	Invalidate(ctx context.Context, userID string) error
}
