package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeInsufficientBalance     = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidUserID           = 4003
	CodePaymentAlreadyProcessed = 4004
	CodeInvalidPayment          = 4005
	CodePaymentValidationFailed = 4006
	CodeEmptyQuery              = 4007
	CodeUnsupportedModel        = 4008
	CodeUnauthorized            = 4010
	CodeForbidden               = 4030
	CodeUserNotFound            = 4040
	CodeRetrievalRateLimited    = 4290

	// 5xxx - Server errors
	CodeInternalServer             = 5000
	CodePaymentRecordedNotCredited = 5002
	CodeRetrievalFailed            = 5020
	CodeGenerationFailed           = 5021
	CodeStoreUnavailable           = 5030
)

// Base error types
var (
	// ErrInsufficientBalance is returned when an account does not hold enough credits
	ErrInsufficientBalance = errors.New("insufficient credits")

	// ErrInvalidAmount is returned when a credit or payment amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidPayment is returned when a payment descriptor is incomplete
	ErrInvalidPayment = errors.New("invalid payment descriptor")

	// ErrPaymentValidationFailed is returned when a payment did not succeed at the processor
	ErrPaymentValidationFailed = errors.New("payment was not successful")

	// ErrPaymentAlreadyProcessed signals that a payment ID is already in the payment log
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")

	// ErrPaymentRecordedNotCredited is returned when a payment was logged but the credit failed
	ErrPaymentRecordedNotCredited = errors.New("payment recorded but credits not added")

	// ErrUserNotFound is returned when no account exists for the user
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable is returned for transient failures of the ledger store
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrEmptyQuery is returned when a question has no content
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrUnsupportedModel is returned when a generation model is not in the catalog
	ErrUnsupportedModel = errors.New("unsupported model")

	// ErrRetrievalFailed is returned when the retrieval service rejects or fails a request
	ErrRetrievalFailed = errors.New("retrieval failed")

	// ErrRetrievalRateLimited is returned when the retrieval service throttles us
	ErrRetrievalRateLimited = errors.New("retrieval rate limited")

	// ErrGenerationFailed is returned when the generation provider fails
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnauthorized is returned when the bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the token subject does not own the resource
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrPaymentRecordedNotCredited):
		return CodePaymentRecordedNotCredited
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrPaymentAlreadyProcessed):
		return CodePaymentAlreadyProcessed
	case errors.Is(err, ErrInvalidPayment):
		return CodeInvalidPayment
	case errors.Is(err, ErrPaymentValidationFailed):
		return CodePaymentValidationFailed
	case errors.Is(err, ErrEmptyQuery):
		return CodeEmptyQuery
	case errors.Is(err, ErrUnsupportedModel):
		return CodeUnsupportedModel
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrRetrievalRateLimited):
		return CodeRetrievalRateLimited
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrRetrievalFailed):
		return CodeRetrievalFailed
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// PaymentRecordedNotCreditedError is the partial failure of the confirmation flow:
// the payment is in the log but the credit increment did not go through.
type PaymentRecordedNotCreditedError struct {
	PaymentID string
	UserID    string
	Credits   int64
	Err       error
}

// Error implements the error interface
func (e *PaymentRecordedNotCreditedError) Error() string {
	return fmt.Sprintf("payment %s recorded for user %s but %d credits were not added: %v",
		e.PaymentID, e.UserID, e.Credits, e.Err)
}

// Is matches ErrPaymentRecordedNotCredited
func (e *PaymentRecordedNotCreditedError) Is(target error) bool {
	return target == ErrPaymentRecordedNotCredited
}

// Unwrap returns the credit failure
func (e *PaymentRecordedNotCreditedError) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the account owner
func (e *PaymentRecordedNotCreditedError) UserMessage() string {
	return fmt.Sprintf("Payment recorded but credits not added. Please contact support with payment ID %s.", e.PaymentID)
}

// LogFields returns a map of fields for structured logging
func (e *PaymentRecordedNotCreditedError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "payment_recorded_not_credited",
		"payment_id": e.PaymentID,
		"user_id":    e.UserID,
		"credits":    e.Credits,
		"error_code": CodePaymentRecordedNotCredited,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPaymentRecordedNotCreditedError creates the partial failure error
func NewPaymentRecordedNotCreditedError(paymentID, userID string, credits int64, err error) error {
	return &PaymentRecordedNotCreditedError{
		PaymentID: paymentID,
		UserID:    userID,
		Credits:   credits,
		Err:       err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient credits
type InsufficientBalanceError struct {
	UserID    string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID string, requested, available int64) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// StoreError wraps a failure of the ledger store with the operation that hit it
type StoreError struct {
	Operation string
	UserID    string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("ledger store error during %s for user %s: %v", e.Operation, e.UserID, e.Err)
}

// Is matches ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Unwrap returns the underlying driver error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_unavailable",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeStoreUnavailable,
	}
}

// NewStoreError creates a store error for the given operation
func NewStoreError(operation, userID string, err error) error {
	return &StoreError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient credits
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsStoreUnavailableError checks if the error is a transient store failure
func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsPaymentAlreadyProcessedError checks if the error reports a duplicate payment
func IsPaymentAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrPaymentAlreadyProcessed)
}

// IsPaymentRecordedNotCreditedError checks for the partial confirmation failure
func IsPaymentRecordedNotCreditedError(err error) bool {
	return errors.Is(err, ErrPaymentRecordedNotCredited)
}

// IsValidationError checks if the error is caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidPayment) ||
		errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, ErrUnsupportedModel) ||
		errors.Is(err, ErrInvalidRequest)
}
