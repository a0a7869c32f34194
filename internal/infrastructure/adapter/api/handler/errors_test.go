package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

type userFacingError struct{}

func (userFacingError) Error() string       { return "raw upstream detail" }
func (userFacingError) UserMessage() string { return "Search is busy, retry soon" }
func (userFacingError) Is(target error) bool {
	return target == domainerr.ErrRetrievalRateLimited
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", domainerr.ErrInvalidAmount, http.StatusBadRequest},
		{"InvalidRequest", fmt.Errorf("%w: bad json", domainerr.ErrInvalidRequest), http.StatusBadRequest},
		{"Unauthorized", domainerr.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", domainerr.ErrForbidden, http.StatusForbidden},
		{"UserNotFound", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"AlreadyProcessed", domainerr.ErrPaymentAlreadyProcessed, http.StatusConflict},
		{"ValidationFailed", domainerr.ErrPaymentValidationFailed, http.StatusUnprocessableEntity},
		{"InsufficientBalance", domainerr.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"RateLimited", domainerr.ErrRetrievalRateLimited, http.StatusTooManyRequests},
		{"StoreUnavailable", domainerr.NewStoreError("debit", "u", errors.New("dial")), http.StatusServiceUnavailable},
		{"RecordedNotCredited", domainerr.NewPaymentRecordedNotCreditedError("pi_1", "u", 1, domainerr.ErrStoreUnavailable), http.StatusInternalServerError},
		{"GenerationFailed", domainerr.ErrGenerationFailed, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusFor(tc.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	t.Run("should carry the payment id for recorded-not-credited", func(t *testing.T) {
		err := domainerr.NewPaymentRecordedNotCreditedError("pi_abc", "user-1", 10001, domainerr.ErrStoreUnavailable)
		resp := NewErrorResponse(err)

		assert.Equal(t, domainerr.CodePaymentRecordedNotCredited, resp.Code)
		assert.Equal(t, "pi_abc", resp.PaymentID)
		assert.Contains(t, resp.Message, "contact support")
	})

	t.Run("should ask to try again when the store is down", func(t *testing.T) {
		resp := NewErrorResponse(domainerr.NewStoreError("credit", "user-1", errors.New("dial tcp: refused")))

		assert.Equal(t, domainerr.CodeStoreUnavailable, resp.Code)
		assert.Contains(t, resp.Message, "try again")
		assert.NotContains(t, resp.Message, "dial")
	})

	t.Run("should prefer user messages", func(t *testing.T) {
		resp := NewErrorResponse(userFacingError{})

		assert.Equal(t, domainerr.CodeRetrievalRateLimited, resp.Code)
		assert.Equal(t, "Search is busy, retry soon", resp.Message)
	})

	t.Run("should echo client errors", func(t *testing.T) {
		resp := NewErrorResponse(domainerr.ErrInvalidAmount)
		assert.Equal(t, domainerr.ErrInvalidAmount.Error(), resp.Message)
	})

	t.Run("should hide internal errors", func(t *testing.T) {
		resp := NewErrorResponse(errors.New("pq: relation does not exist"))

		assert.Equal(t, domainerr.CodeInternalServer, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
	})
}
