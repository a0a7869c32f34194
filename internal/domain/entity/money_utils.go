package entity

import (
	"fmt"
	"math"
	"strconv"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
)

// ValidateAmount checks that a credit or payment amount is strictly positive
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidAmount, amount)
	}
	return nil
}

// AddAmounts sums two non-negative amounts and rejects results that overflow int64
func AddAmounts(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand", errs.ErrInvalidAmount)
	}
	if a > math.MaxInt64-b {
		return 0, fmt.Errorf("%w: %d + %d overflows", errs.ErrInvalidAmount, a, b)
	}
	return a + b, nil
}

// AmountInCentsToString renders an amount in the smallest currency unit as a decimal string.
// 1015 becomes "10.15", 5 becomes "0.05".
func AmountInCentsToString(amountInCents int64) string {
	sign := ""
	if amountInCents < 0 {
		sign = "-"
		amountInCents = -amountInCents
	}

	digits := strconv.FormatInt(amountInCents, 10)
	for len(digits) < 3 {
		digits = "0" + digits
	}

	split := len(digits) - 2
	return sign + digits[:split] + "." + digits[split:]
}
