package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func pgError(code string) error {
	return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: "boom"})
}

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name      string
		err       error
		expected  ErrorType
		retryable bool
	}{
		{"UniqueViolation", pgError("23505"), DuplicateKeyError, false},
		{"GormDuplicatedKey", gorm.ErrDuplicatedKey, DuplicateKeyError, false},
		{"SerializationFailure", pgError("40001"), LockError, true},
		{"Deadlock", pgError("40P01"), LockError, true},
		{"ConnectionFailure", pgError("08006"), ConnectionError, false},
		{"AdminShutdown", pgError("57P01"), ConnectionError, false},
		{"DialError", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError, false},
		{"Timeout", errors.New("i/o timeout"), TransientError, false},
		{"CheckViolation", pgError("23514"), ConstraintError, false},
		{"SyntaxError", pgError("42601"), "", false},
		{"NumericOutOfRange", pgError("22003"), "", false},
		{"Nil", nil, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
			assert.Equal(t, tc.retryable, classifier.IsRetryable(tc.err))
		})
	}
}

func TestMapStoreError(t *testing.T) {
	classifier := NewErrorClassifier()
	log := logger.NewNoopLogger()

	t.Run("should map connection failures to store unavailable", func(t *testing.T) {
		err := mapStoreError(classifier, log, "debiting credits", "u1", pgError("08006"))
		assert.True(t, errs.IsStoreUnavailableError(err))

		var storeErr *errs.StoreError
		assert.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "debiting credits", storeErr.Operation)
	})

	t.Run("should map check violations to insufficient balance", func(t *testing.T) {
		err := mapStoreError(classifier, log, "debiting credits", "u1", pgError("23514"))
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
	})

	t.Run("should map a balance overflow to an invalid amount", func(t *testing.T) {
		err := mapStoreError(classifier, log, "incrementing credits", "u1", pgError("22003"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.NotErrorIs(t, err, errs.ErrInternalServer)
		assert.False(t, errs.IsStoreUnavailableError(err))
	})

	t.Run("should pass cancellation through", func(t *testing.T) {
		err := mapStoreError(classifier, log, "listing payments", "u1", context.Canceled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should treat unknown errors as internal", func(t *testing.T) {
		err := mapStoreError(classifier, log, "listing payments", "u1", pgError("42601"))
		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.False(t, errs.IsStoreUnavailableError(err))
	})
}

func TestNoRetry(t *testing.T) {
	calls := 0
	err := NoRetry(context.Background(), func() error {
		calls++
		return pgError("40001")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
