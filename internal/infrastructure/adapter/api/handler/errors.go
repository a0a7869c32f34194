package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// userMessenger is implemented by errors that carry text meant for the end user
type userMessenger interface {
	UserMessage() string
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case domainerr.IsPaymentRecordedNotCreditedError(err):
		return http.StatusInternalServerError
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsUserNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsPaymentAlreadyProcessedError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrPaymentValidationFailed):
		return http.StatusUnprocessableEntity
	case domainerr.IsInsufficientBalanceError(err):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrRetrievalRateLimited):
		return http.StatusTooManyRequests
	case domainerr.IsStoreUnavailableError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for err without leaking internal detail
func NewErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: domainerr.ErrorCode(err)}

	var notCredited *domainerr.PaymentRecordedNotCreditedError
	var messenger userMessenger
	switch {
	case errors.As(err, &notCredited):
		resp.Message = notCredited.UserMessage()
		resp.PaymentID = notCredited.PaymentID
	case domainerr.IsStoreUnavailableError(err):
		resp.Message = "The ledger is temporarily unavailable, please try again"
	case errors.As(err, &messenger):
		resp.Message = messenger.UserMessage()
	case StatusFor(err) < http.StatusInternalServerError:
		resp.Message = err.Error()
	default:
		resp.Message = "Internal server error"
	}
	return resp
}

// respondError logs err and writes the mapped status and body
func respondError(c *gin.Context, logger coreport.Logger, msg string, err error) {
	status := StatusFor(err)
	fields := map[string]any{
		"path":       c.FullPath(),
		"user_id":    c.Param("userId"),
		"status":     status,
		"error_code": domainerr.ErrorCode(err),
		"error":      err.Error(),
		"request_id": coreport.RequestIDFromContext(c.Request.Context()),
	}
	if status >= http.StatusInternalServerError {
		logger.Error(msg, fields)
	} else {
		logger.Warn(msg, fields)
	}

	c.AbortWithStatusJSON(status, NewErrorResponse(err))
}
