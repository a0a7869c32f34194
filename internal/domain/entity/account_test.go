package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/docqa-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create an account with the opening balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		account, err := NewAccount("user-1", DefaultAccountCredits, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.UserID)
		assert.Equal(t, int64(1000), account.Credits())
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("should reject a blank user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewAccount("  ", 10, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject a negative opening balance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		_, err := NewAccount("user-1", -1, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAccountDebit(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := fixedTime.Add(time.Minute)

	tests := []struct {
		name     string
		start    int64
		amount   int64
		wantErr  error
		expected int64
	}{
		{"exact balance", 100, 100, nil, 0},
		{"partial balance", 1000, 400, nil, 600},
		{"more than balance", 1000, 1500, errs.ErrInsufficientBalance, 1000},
		{"zero amount", 1000, 0, errs.ErrInvalidAmount, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.EXPECT().Now().Return(later).Maybe()
			account := RestoreAccount("user-1", tc.start, fixedTime, fixedTime)

			err := account.Debit(tc.amount, mockTime)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, fixedTime, account.UpdatedAt)
			} else {
				require.NoError(t, err)
				assert.Equal(t, later, account.UpdatedAt)
			}
			assert.Equal(t, tc.expected, account.Credits())
			assert.Equal(t, tc.expected >= tc.amount && tc.amount > 0, account.CanDebit(tc.amount))
		})
	}
}
