package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
)

// DefaultAccountCredits is the balance granted when an account is first created
const DefaultAccountCredits int64 = 1000

// Account holds the credit balance of one user
type Account struct {
	UserID    string    // External user identifier (token subject)
	credits   int64     // Never negative
	CreatedAt time.Time // When the account was created
	UpdatedAt time.Time // When the balance last changed
}

// NewAccount creates an account with the given opening balance
func NewAccount(userID string, initialCredits int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if initialCredits < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &Account{
		UserID:    userID,
		credits:   initialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreAccount rebuilds an account from persisted values
func RestoreAccount(userID string, credits int64, createdAt, updatedAt time.Time) *Account {
	return &Account{
		UserID:    userID,
		credits:   credits,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Credits returns the current balance
func (a *Account) Credits() int64 {
	return a.credits
}

// CanDebit reports whether the balance covers the amount
func (a *Account) CanDebit(amount int64) bool {
	return amount > 0 && a.credits >= amount
}

// Debit removes credits, refusing to go below zero
func (a *Account) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.credits < amount {
		return errs.NewInsufficientBalanceError(a.UserID, amount, a.credits)
	}

	a.credits -= amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ValidateUserID rejects blank user identifiers
func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.ErrInvalidUserID
	}
	return nil
}
