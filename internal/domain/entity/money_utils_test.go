package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{"Positive amount", 400, false},
		{"Smallest amount", 1, false},
		{"Zero amount", 0, true},
		{"Negative amount", -10, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(tc.amount)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddAmounts(t *testing.T) {
	t.Run("Adds bonus to payment amount", func(t *testing.T) {
		sum, err := AddAmounts(10000, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10001), sum)
	})

	t.Run("Rejects overflow", func(t *testing.T) {
		_, err := AddAmounts(math.MaxInt64, 1)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Rejects negative operands", func(t *testing.T) {
		_, err := AddAmounts(-1, 1)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestAmountInCentsToString(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{10000, "100.00"},
		{1015, "10.15"},
		{5, "0.05"},
		{0, "0.00"},
		{-250, "-2.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInCentsToString(tc.cents))
		})
	}
}
