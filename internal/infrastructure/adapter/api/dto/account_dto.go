package dto

import "github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"

// AccountResponse represents an account and its balance
type AccountResponse struct {
	UserID  string `json:"userId"`
	Credits int64  `json:"credits"`
}

// AmountRequest is the body of debit and credit requests
type AmountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// DebitResponse reports whether the debit was applied
type DebitResponse struct {
	UserID  string `json:"userId"`
	Amount  int64  `json:"amount"`
	Success bool   `json:"success"`
}

// CreditResponse reports an applied credit. Credits is omitted when the
// new balance could not be read back.
type CreditResponse struct {
	UserID  string `json:"userId"`
	Amount  int64  `json:"amount"`
	Credits *int64 `json:"credits,omitempty"`
}

// ProfileResponse is the display view of an account
type ProfileResponse struct {
	UserID   string            `json:"userId"`
	Credits  int64             `json:"credits"`
	Payments []PaymentResponse `json:"payments"`
}

// NewProfileResponse maps a snapshot to its response
func NewProfileResponse(snapshot entity.AccountSnapshot) ProfileResponse {
	return ProfileResponse{
		UserID:   snapshot.UserID,
		Credits:  snapshot.Credits,
		Payments: NewPaymentResponses(snapshot.Payments),
	}
}
