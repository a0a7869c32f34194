package service

import (
	"context"
	"time"
)

// Ledger event types
const (
	EventPaymentCredited     = "payment.credited"
	EventPaymentCreditFailed = "payment.credit_failed"
)

// LedgerEvent is published after a payment confirmation changes or fails to change a balance
type LedgerEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	PaymentID  string    `json:"paymentId"`
	Amount     int64     `json:"amount"`
	Credits    int64     `json:"credits"`
	Balance    int64     `json:"balance,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers ledger events to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event LedgerEvent) error
	Close() error
}
