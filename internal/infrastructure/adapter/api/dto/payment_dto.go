package dto

import (
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// PaymentResponse represents one payment log entry
type PaymentResponse struct {
	PaymentID string    `json:"paymentId"`
	UserID    string    `json:"userId"`
	Amount    int64     `json:"amount"`
	Display   string    `json:"amountDisplay"` // Amount in major units, "5.00" for 500
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPaymentResponse maps a payment to its response
func NewPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Display:   entity.AmountInCentsToString(p.Amount),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

// NewPaymentResponses maps a payment list, never returning nil
func NewPaymentResponses(payments []entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, NewPaymentResponse(p))
	}
	return out
}

// PaymentRequest carries a verified payment descriptor
type PaymentRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status" binding:"required"`
}

// Descriptor converts the request to the domain descriptor
func (r PaymentRequest) Descriptor() entity.PaymentDescriptor {
	return entity.PaymentDescriptor{ID: r.PaymentID, Amount: r.Amount, Status: r.Status}
}

// RecordPaymentResponse reports whether the payment was newly recorded
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Created bool            `json:"created"`
}

// ConfirmPaymentResponse describes the outcome of a confirmation
type ConfirmPaymentResponse struct {
	Outcome      string           `json:"outcome"`
	Payment      *PaymentResponse `json:"payment,omitempty"`
	CreditsAdded int64            `json:"creditsAdded"`
	Credits      *int64           `json:"credits,omitempty"`
}
