package events

import (
	"context"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

// NoopPublisher drops events, logging them at debug level
type NoopPublisher struct {
	logger coreport.Logger
}

var _ service.EventPublisher = (*NoopPublisher)(nil)

// NewNoopPublisher creates a publisher for deployments without a broker
func NewNoopPublisher(logger coreport.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the event and returns nil
func (p *NoopPublisher) Publish(_ context.Context, event service.LedgerEvent) error {
	p.logger.Debug("Ledger event dropped, publishing disabled", map[string]any{
		"event_type": event.Type,
		"user_id":    event.UserID,
		"payment_id": event.PaymentID,
	})
	return nil
}

// Close is a no-op
func (p *NoopPublisher) Close() error {
	return nil
}
