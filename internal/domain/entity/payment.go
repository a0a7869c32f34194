package entity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
)

// PaymentStatus is the processor-reported status of a payment
type PaymentStatus string

// PaymentStatusSucceeded is the only status that may be credited
const PaymentStatusSucceeded PaymentStatus = "succeeded"

// Payment is one confirmed external payment in a user's payment log
type Payment struct {
	ID        string        // External payment identifier, unique per user
	UserID    string        // Owner of the payment
	Amount    int64         // Smallest currency unit
	Status    PaymentStatus // Processor status
	CreatedAt time.Time     // Server-assigned
}

// PaymentDescriptor is the verified payment handed over by the checkout flow
type PaymentDescriptor struct {
	ID     string
	Amount int64
	Status string
}

// Validate checks the descriptor fields that do not depend on the status value
func (d PaymentDescriptor) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("%w: payment ID is required", errs.ErrInvalidPayment)
	}
	if strings.TrimSpace(d.Status) == "" {
		return fmt.Errorf("%w: status is required", errs.ErrInvalidPayment)
	}
	return ValidateAmount(d.Amount)
}

// IsSucceeded reports whether the processor marked the payment as succeeded
func (d PaymentDescriptor) IsSucceeded() bool {
	return PaymentStatus(d.Status) == PaymentStatusSucceeded
}

// NewPayment creates a payment record stamped with the current server time
func NewPayment(userID string, descriptor PaymentDescriptor, timeProvider coreport.TimeProvider) (*Payment, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		ID:        descriptor.ID,
		UserID:    userID,
		Amount:    descriptor.Amount,
		Status:    PaymentStatus(descriptor.Status),
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsSucceeded reports whether the payment is in succeeded status
func (p *Payment) IsSucceeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// SortPaymentsByCreatedAtDesc orders payments most recent first.
// Zero timestamps sort last.
func SortPaymentsByCreatedAtDesc(payments []Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
}
