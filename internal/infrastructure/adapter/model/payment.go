package model

import (
	"time"
)

// Payment is one row of a user's payment log. The (user_id, payment_id) pair is
// unique, which is what makes a payment credit at most once.
type Payment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"not null;size:255;uniqueIndex:ux_payments_user_payment,priority:1"`
	PaymentID string    `gorm:"not null;size:255;uniqueIndex:ux_payments_user_payment,priority:2"`
	Amount    int64     `gorm:"not null"`
	Status    string    `gorm:"not null;size:50"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
