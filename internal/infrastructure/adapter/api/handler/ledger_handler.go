package handler

import (
	"fmt"
	"net/http"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles account, credit and payment requests
type LedgerHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, logger: logger}
}

// bindJSON decodes the body, answering 400 on failure
func bindJSON(c *gin.Context, logger coreport.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, logger, "Invalid request format",
			fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}

// balancePointer hides the unknown-balance marker from responses
func balancePointer(credits int64) *int64 {
	if credits == usecase.BalanceUnknown {
		return nil
	}
	return &credits
}

// EnsureAccount handles POST /user/:userId/account
func (h *LedgerHandler) EnsureAccount(c *gin.Context) {
	userID := c.Param("userId")

	account, err := h.ledger.EnsureAccount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error ensuring account", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{UserID: account.UserID, Credits: account.Credits()})
}

// GetBalance handles GET /user/:userId/balance
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	userID := c.Param("userId")

	credits, err := h.ledger.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "Error getting balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{UserID: userID, Credits: credits})
}

// GetProfile handles GET /user/:userId/profile
func (h *LedgerHandler) GetProfile(c *gin.Context) {
	snapshot, err := h.ledger.Snapshot(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "Error loading profile", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileResponse(snapshot))
}

// Debit handles POST /user/:userId/credits/debit. A refused debit is not an error.
func (h *LedgerHandler) Debit(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.AmountRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	ok, err := h.ledger.Debit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "Error debiting credits", err)
		return
	}

	c.JSON(http.StatusOK, dto.DebitResponse{UserID: userID, Amount: req.Amount, Success: ok})
}

// Credit handles POST /user/:userId/credits/credit
func (h *LedgerHandler) Credit(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.AmountRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	credits, err := h.ledger.Credit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "Error crediting account", err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditResponse{
		UserID:  userID,
		Amount:  req.Amount,
		Credits: balancePointer(credits),
	})
}

// ListPayments handles GET /user/:userId/payments
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	payments, err := h.ledger.ListPayments(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "Error listing payments", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponses(payments))
}

// GetPayment handles GET /user/:userId/payments/:paymentId
func (h *LedgerHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("paymentId")

	payment, err := h.ledger.IsPaymentRecorded(c.Request.Context(), c.Param("userId"), paymentID)
	if err != nil {
		respondError(c, h.logger, "Error looking up payment", err)
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:      domainerr.CodeUserNotFound,
			Message:   "Payment not found",
			PaymentID: paymentID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentResponse(*payment))
}

// RecordPayment handles POST /user/:userId/payments
func (h *LedgerHandler) RecordPayment(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.PaymentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	payment, created, err := h.ledger.RecordPayment(c.Request.Context(), userID, req.PaymentID, req.Amount, req.Status)
	if err != nil {
		respondError(c, h.logger, "Error recording payment", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.RecordPaymentResponse{Payment: dto.NewPaymentResponse(*payment), Created: created})
}

// ConfirmPayment handles POST /user/:userId/payments/confirm
func (h *LedgerHandler) ConfirmPayment(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.PaymentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.ledger.ConfirmPayment(c.Request.Context(), userID, req.Descriptor())
	if err != nil {
		respondError(c, h.logger, "Error confirming payment", err)
		return
	}

	resp := dto.ConfirmPaymentResponse{
		Outcome:      string(result.Outcome),
		CreditsAdded: result.CreditsAdded,
	}
	if result.Payment != nil {
		payment := dto.NewPaymentResponse(*result.Payment)
		resp.Payment = &payment
	}
	if result.Credited() {
		resp.Credits = balancePointer(result.Balance)
	}

	if result.Outcome == entity.OutcomeValidationFailed {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
