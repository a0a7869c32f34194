package persistence

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// AccountRepository stores per-user credit balances
type AccountRepository interface {
	// GetByID loads an account, returning ErrUserNotFound when none exists
	GetByID(ctx context.Context, userID string) (*entity.Account, error)

	// Create inserts a new account. An existing account is left untouched and
	// returned instead, with created set to false.
	Create(ctx context.Context, account *entity.Account) (existing *entity.Account, created bool, err error)

	// Debit decrements the balance inside a row-locked transaction.
	// It returns false without mutating anything when the balance does not cover amount.
	Debit(ctx context.Context, userID string, amount int64) (bool, error)

	// Increment adds amount without reading the balance first
	Increment(ctx context.Context, userID string, amount int64) error
}
