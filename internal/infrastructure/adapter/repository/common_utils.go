package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// PostgreSQL SQLSTATE codes the ledger cares about
const (
	sqlStateNumericOutOfRange    = "22003"
	sqlStateUniqueViolation      = "23505"
	sqlStateCheckViolation       = "23514"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateAdminShutdown        = "57P01"
	sqlStateCannotConnectNow     = "57P03"
	sqlClassIntegrity            = "23"
	sqlClassConnection           = "08"
)

// RetryFunc runs operation, re-running it while it fails with a retryable error.
// The database layer injects its backoff policy through this type.
type RetryFunc func(ctx context.Context, operation func() error) error

// NoRetry runs the operation exactly once
func NoRetry(_ context.Context, operation func() error) error {
	return operation()
}

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// sqlState extracts the SQLSTATE from a pgx error, or "" for anything else
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if c.IsDuplicateKeyError(err) {
		return DuplicateKeyError
	}
	if c.IsLockError(err) {
		return LockError
	}
	if c.IsConnectionError(err) {
		return ConnectionError
	}
	if c.IsTransientError(err) {
		return TransientError
	}
	if c.IsConstraintError(err) {
		return ConstraintError
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUniqueViolation {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// IsCheckViolation checks if a CHECK constraint rejected the write
func (c *ErrorClassifier) IsCheckViolation(err error) bool {
	if err == nil {
		return false
	}
	return sqlState(err) == sqlStateCheckViolation ||
		strings.Contains(err.Error(), "violates check constraint")
}

// IsOutOfRange checks if a value overflowed its column, such as a bigint balance
func (c *ErrorClassifier) IsOutOfRange(err error) bool {
	if err == nil {
		return false
	}
	return sqlState(err) == sqlStateNumericOutOfRange
}

// IsLockError checks if the transaction lost a lock or serialization race.
// Postgres guarantees nothing was committed for these, so they are safe to retry.
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	switch sqlState(err) {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return true
	}
	return strings.Contains(err.Error(), "deadlock detected") ||
		strings.Contains(err.Error(), "could not serialize access")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	state := sqlState(err)
	if strings.HasPrefix(state, sqlClassConnection) || state == sqlStateAdminShutdown || state == sqlStateCannotConnectNow {
		return true
	}
	if state != "" {
		return false
	}
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "dial") ||
		strings.Contains(err.Error(), "broken pipe") ||
		strings.Contains(err.Error(), "server closed")
}

// IsTransientError checks if the store may succeed on a later attempt
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if c.IsLockError(err) || c.IsConnectionError(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "EOF")
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if strings.HasPrefix(sqlState(err), sqlClassIntegrity) {
		return true
	}
	return strings.Contains(err.Error(), "violates")
}

// IsRetryable reports whether an operation may be re-run as-is.
// Connection failures are excluded: a dropped connection can hide a committed write.
func (c *ErrorClassifier) IsRetryable(err error) bool {
	return c.IsLockError(err)
}

// mapStoreError converts a raw gorm/pgx error into the ledger's domain errors.
// Not-found and duplicate cases are handled by the callers that expect them.
func mapStoreError(classifier *ErrorClassifier, logger coreport.Logger, operation, userID string, err error) error {
	fields := map[string]any{
		"operation":  operation,
		"user_id":    userID,
		"error":      err.Error(),
		"error_type": string(classifier.Classify(err)),
	}

	switch {
	case errors.Is(err, context.Canceled):
		logger.Warn("Store operation canceled", fields)
		return err
	case classifier.IsCheckViolation(err):
		logger.Warn("Store rejected a negative balance", fields)
		return fmt.Errorf("%w: %s", errs.ErrInsufficientBalance, operation)
	case classifier.IsOutOfRange(err):
		logger.Warn("Store rejected an out of range balance", fields)
		return fmt.Errorf("%w: %s: balance out of range", errs.ErrInvalidAmount, operation)
	case classifier.IsTransientError(err):
		logger.Error("Ledger store unavailable", fields)
		return errs.NewStoreError(operation, userID, err)
	default:
		logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
		return fmt.Errorf("%w: %s: %s", errs.ErrInternalServer, operation, err.Error())
	}
}
