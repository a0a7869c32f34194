package events

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	corem "github.com/amirhossein-jamali/docqa-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoopPublisher(t *testing.T) {
	logger := corem.NewMockLogger(t)
	logger.EXPECT().Debug("Ledger event dropped, publishing disabled", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["payment_id"] == "pi_1" && fields["event_type"] == service.EventPaymentCredited
	})).Once()

	publisher := NewNoopPublisher(logger)

	assert.NoError(t, publisher.Publish(context.Background(), service.LedgerEvent{
		Type:      service.EventPaymentCredited,
		UserID:    "user-1",
		PaymentID: "pi_1",
	}))
	assert.NoError(t, publisher.Close())
}
