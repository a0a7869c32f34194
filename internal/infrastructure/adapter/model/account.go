package model

import (
	"time"
)

// Account represents the database model for a user's credit balance
type Account struct {
	UserID    string    `gorm:"primaryKey;size:255"`
	Credits   int64     `gorm:"not null;default:0;check:chk_accounts_credits_non_negative,credits >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
