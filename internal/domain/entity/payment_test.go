package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/docqa-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	fixedTime := time.Date(2024, 5, 5, 8, 30, 0, 0, time.UTC)

	t.Run("should stamp the payment with server time", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		payment, err := NewPayment("user-1", PaymentDescriptor{ID: "pi_abc", Amount: 10000, Status: "succeeded"}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "pi_abc", payment.ID)
		assert.Equal(t, "user-1", payment.UserID)
		assert.Equal(t, fixedTime, payment.CreatedAt)
		assert.True(t, payment.IsSucceeded())
	})

	t.Run("should keep non-succeeded statuses verbatim", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		payment, err := NewPayment("user-1", PaymentDescriptor{ID: "pi_abc", Amount: 1, Status: "processing"}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, PaymentStatus("processing"), payment.Status)
		assert.False(t, payment.IsSucceeded())
	})

	invalid := []struct {
		name       string
		userID     string
		descriptor PaymentDescriptor
		wantErr    error
	}{
		{"blank user", "", PaymentDescriptor{ID: "p", Amount: 1, Status: "succeeded"}, errs.ErrInvalidUserID},
		{"blank payment ID", "user-1", PaymentDescriptor{ID: " ", Amount: 1, Status: "succeeded"}, errs.ErrInvalidPayment},
		{"blank status", "user-1", PaymentDescriptor{ID: "p", Amount: 1}, errs.ErrInvalidPayment},
		{"zero amount", "user-1", PaymentDescriptor{ID: "p", Status: "succeeded"}, errs.ErrInvalidAmount},
	}
	for _, tc := range invalid {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			mockTime := coremocks.NewMockTimeProvider(t)

			_, err := NewPayment(tc.userID, tc.descriptor, mockTime)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSortPaymentsByCreatedAtDesc(t *testing.T) {
	base := time.Date(2024, 5, 5, 8, 30, 0, 0, time.UTC)
	payments := []Payment{
		{ID: "old", CreatedAt: base},
		{ID: "new", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "mid", CreatedAt: base.Add(time.Hour)},
	}

	SortPaymentsByCreatedAtDesc(payments)

	assert.Equal(t, "new", payments[0].ID)
	assert.Equal(t, "mid", payments[1].ID)
	assert.Equal(t, "old", payments[2].ID)
}

func TestPassageTexts(t *testing.T) {
	texts := PassageTexts([]Passage{{Text: "a", Score: 0.9}, {Text: "b", Score: 0.4}})
	assert.Equal(t, []string{"a", "b"}, texts)
	assert.Empty(t, PassageTexts(nil))
}
