package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/docqa-ledger/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newLedgerRouter(t *testing.T) (*gin.Engine, *usecasemocks.MockLedgerUseCase) {
	t.Helper()
	ledger := usecasemocks.NewMockLedgerUseCase(t)
	h := NewLedgerHandler(ledger, logger.NewNoopLogger())

	router := gin.New()
	user := router.Group("/user/:userId")
	user.POST("/account", h.EnsureAccount)
	user.GET("/balance", h.GetBalance)
	user.GET("/profile", h.GetProfile)
	user.POST("/credits/debit", h.Debit)
	user.POST("/credits/credit", h.Credit)
	user.GET("/payments", h.ListPayments)
	user.GET("/payments/:paymentId", h.GetPayment)
	user.POST("/payments", h.RecordPayment)
	user.POST("/payments/confirm", h.ConfirmPayment)
	return router, ledger
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestEnsureAccountAndBalance(t *testing.T) {
	t.Run("should return the account", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().EnsureAccount(mock.Anything, "user-1").
			Return(entity.RestoreAccount("user-1", 20, time.Time{}, time.Time{}), nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/account", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dto.AccountResponse{UserID: "user-1", Credits: 20}, decode[dto.AccountResponse](t, w))
	})

	t.Run("should map a missing account to 404", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().GetBalance(mock.Anything, "ghost").Return(int64(0), domainerr.ErrUserNotFound).Once()

		w := doJSON(router, http.MethodGet, "/user/ghost/balance", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, domainerr.CodeUserNotFound, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("should map an unavailable store to 503", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().GetBalance(mock.Anything, "user-1").
			Return(int64(0), domainerr.NewStoreError("get_balance", "user-1", assert.AnError)).Once()

		w := doJSON(router, http.MethodGet, "/user/user-1/balance", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, domainerr.CodeStoreUnavailable, decode[dto.ErrorResponse](t, w).Code)
	})
}

func TestDebit(t *testing.T) {
	t.Run("should report success", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().Debit(mock.Anything, "user-1", int64(400)).Return(true, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/debit", `{"amount":400}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, dto.DebitResponse{UserID: "user-1", Amount: 400, Success: true}, decode[dto.DebitResponse](t, w))
	})

	t.Run("should answer 200 with success false when refused", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().Debit(mock.Anything, "user-1", int64(1500)).Return(false, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/debit", `{"amount":1500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decode[dto.DebitResponse](t, w).Success)
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		router, _ := newLedgerRouter(t)

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/debit", `{"amount":"lots"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidRequest, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("should map invalid amounts to 400", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().Debit(mock.Anything, "user-1", int64(-5)).Return(false, domainerr.ErrInvalidAmount).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/debit", `{"amount":-5}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domainerr.CodeInvalidAmount, decode[dto.ErrorResponse](t, w).Code)
	})
}

func TestCredit(t *testing.T) {
	t.Run("should return the new balance", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().Credit(mock.Anything, "user-1", int64(500)).Return(int64(1500), nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/credit", `{"amount":500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.CreditResponse](t, w)
		require.NotNil(t, resp.Credits)
		assert.Equal(t, int64(1500), *resp.Credits)
	})

	t.Run("should omit an unknown balance", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().Credit(mock.Anything, "user-1", int64(500)).Return(usecase.BalanceUnknown, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/credits/credit", `{"amount":500}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "credits")
	})
}

func TestPayments(t *testing.T) {
	payment := &entity.Payment{
		ID:        "pay_1",
		UserID:    "user-1",
		Amount:    500,
		Status:    entity.PaymentStatusSucceeded,
		CreatedAt: createdAt,
	}

	t.Run("should list payments", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().ListPayments(mock.Anything, "user-1").Return([]entity.Payment{*payment}, nil).Once()

		w := doJSON(router, http.MethodGet, "/user/user-1/payments", "")

		assert.Equal(t, http.StatusOK, w.Code)
		list := decode[[]dto.PaymentResponse](t, w)
		require.Len(t, list, 1)
		assert.Equal(t, "pay_1", list[0].PaymentID)
	})

	t.Run("should list an empty log as an empty array", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().ListPayments(mock.Anything, "user-1").Return(nil, nil).Once()

		w := doJSON(router, http.MethodGet, "/user/user-1/payments", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("should find a recorded payment", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().IsPaymentRecorded(mock.Anything, "user-1", "pay_1").Return(payment, nil).Once()

		w := doJSON(router, http.MethodGet, "/user/user-1/payments/pay_1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(500), decode[dto.PaymentResponse](t, w).Amount)
	})

	t.Run("should answer 404 for an unrecorded payment", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().IsPaymentRecorded(mock.Anything, "user-1", "pay_2").Return(nil, nil).Once()

		w := doJSON(router, http.MethodGet, "/user/user-1/payments/pay_2", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "pay_2", decode[dto.ErrorResponse](t, w).PaymentID)
	})

	t.Run("should answer 201 for a new record and 200 for an existing one", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().RecordPayment(mock.Anything, "user-1", "pay_1", int64(500), "succeeded").Return(payment, true, nil).Once()
		ledger.EXPECT().RecordPayment(mock.Anything, "user-1", "pay_1", int64(500), "succeeded").Return(payment, false, nil).Once()

		body := `{"paymentId":"pay_1","amount":500,"status":"succeeded"}`
		first := doJSON(router, http.MethodPost, "/user/user-1/payments", body)
		second := doJSON(router, http.MethodPost, "/user/user-1/payments", body)

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.True(t, decode[dto.RecordPaymentResponse](t, first).Created)
		assert.Equal(t, http.StatusOK, second.Code)
		assert.False(t, decode[dto.RecordPaymentResponse](t, second).Created)
	})
}

func TestConfirmPayment(t *testing.T) {
	descriptor := entity.PaymentDescriptor{ID: "pi_abc", Amount: 10000, Status: "succeeded"}
	body := `{"paymentId":"pi_abc","amount":10000,"status":"succeeded"}`
	payment := &entity.Payment{ID: "pi_abc", UserID: "user-1", Amount: 10000, Status: entity.PaymentStatusSucceeded, CreatedAt: createdAt}

	t.Run("should report credits and balance", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().ConfirmPayment(mock.Anything, "user-1", descriptor).Return(entity.ConfirmationResult{
			Outcome:      entity.OutcomeCredited,
			Payment:      payment,
			CreditsAdded: 10001,
			Balance:      11001,
		}, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/payments/confirm", body)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ConfirmPaymentResponse](t, w)
		assert.Equal(t, "credited", resp.Outcome)
		assert.Equal(t, int64(10001), resp.CreditsAdded)
		require.NotNil(t, resp.Credits)
		assert.Equal(t, int64(11001), *resp.Credits)
		require.NotNil(t, resp.Payment)
		assert.Equal(t, "pi_abc", resp.Payment.PaymentID)
	})

	t.Run("should report an already processed payment", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().ConfirmPayment(mock.Anything, "user-1", descriptor).Return(entity.ConfirmationResult{
			Outcome: entity.OutcomeAlreadyProcessed,
			Payment: payment,
		}, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/payments/confirm", body)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decode[dto.ConfirmPaymentResponse](t, w)
		assert.Equal(t, "already_processed", resp.Outcome)
		assert.Nil(t, resp.Credits)
	})

	t.Run("should answer 422 for a failed payment", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		failed := entity.PaymentDescriptor{ID: "pi_abc", Amount: 10000, Status: "failed"}
		ledger.EXPECT().ConfirmPayment(mock.Anything, "user-1", failed).Return(entity.ConfirmationResult{
			Outcome: entity.OutcomeValidationFailed,
		}, nil).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/payments/confirm", `{"paymentId":"pi_abc","amount":10000,"status":"failed"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "validation_failed", decode[dto.ConfirmPaymentResponse](t, w).Outcome)
	})

	t.Run("should answer 500 with the payment id when the credit failed", func(t *testing.T) {
		router, ledger := newLedgerRouter(t)
		ledger.EXPECT().ConfirmPayment(mock.Anything, "user-1", descriptor).Return(
			entity.ConfirmationResult{Payment: payment},
			domainerr.NewPaymentRecordedNotCreditedError("pi_abc", "user-1", 10001, domainerr.ErrStoreUnavailable),
		).Once()

		w := doJSON(router, http.MethodPost, "/user/user-1/payments/confirm", body)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, domainerr.CodePaymentRecordedNotCredited, resp.Code)
		assert.Equal(t, "pi_abc", resp.PaymentID)
	})

	t.Run("should require a payment id", func(t *testing.T) {
		router, _ := newLedgerRouter(t)

		w := doJSON(router, http.MethodPost, "/user/user-1/payments/confirm", `{"amount":10000,"status":"succeeded"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProfile(t *testing.T) {
	router, ledger := newLedgerRouter(t)
	ledger.EXPECT().Snapshot(mock.Anything, "user-1").Return(entity.AccountSnapshot{
		UserID:  "user-1",
		Credits: 700,
	}, nil).Once()

	w := doJSON(router, http.MethodGet, "/user/user-1/profile", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"user-1","credits":700,"payments":[]}`, w.Body.String())
}
