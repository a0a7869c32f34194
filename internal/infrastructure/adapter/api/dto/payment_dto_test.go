package dto

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestNewPaymentResponse(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	resp := NewPaymentResponse(entity.Payment{
		ID:        "pi_1",
		UserID:    "user-1",
		Amount:    1015,
		Status:    entity.PaymentStatusSucceeded,
		CreatedAt: createdAt,
	})

	assert.Equal(t, "pi_1", resp.PaymentID)
	assert.Equal(t, int64(1015), resp.Amount)
	assert.Equal(t, "10.15", resp.Display)
	assert.Equal(t, "succeeded", resp.Status)
	assert.Equal(t, createdAt, resp.CreatedAt)
}

func TestNewPaymentResponses(t *testing.T) {
	assert.NotNil(t, NewPaymentResponses(nil))
	assert.Empty(t, NewPaymentResponses(nil))

	out := NewPaymentResponses([]entity.Payment{{ID: "a", Amount: 5}, {ID: "b", Amount: 500}})
	assert.Len(t, out, 2)
	assert.Equal(t, "0.05", out[0].Display)
	assert.Equal(t, "5.00", out[1].Display)
}

func TestPaymentRequestDescriptor(t *testing.T) {
	req := PaymentRequest{PaymentID: "pi_9", Amount: 700, Status: "succeeded"}
	d := req.Descriptor()

	assert.Equal(t, "pi_9", d.ID)
	assert.Equal(t, int64(700), d.Amount)
	assert.True(t, d.IsSucceeded())
}
