package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

const creditsCheckName = "chk_accounts_credits_non_negative"

// AddCreditsCheck adds the non-negative balance constraint to accounts created before 1.1.0
type AddCreditsCheck struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddCreditsCheck creates a new migration instance
func NewAddCreditsCheck(db *gorm.DB, logger coreport.Logger) *AddCreditsCheck {
	return &AddCreditsCheck{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddCreditsCheck) Run(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	var count int64
	if err := db.Raw(`
		SELECT COUNT(*)
		FROM pg_constraint
		WHERE conname = ? AND conrelid = 'accounts'::regclass
	`, creditsCheckName).Scan(&count).Error; err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return err
	}

	if count > 0 {
		return nil
	}

	m.logger.Info("Adding non-negative credits constraint to accounts", nil)
	if err := db.Exec(`ALTER TABLE accounts ADD CONSTRAINT ` + creditsCheckName + ` CHECK (credits >= 0)`).Error; err != nil {
		m.logger.Error("Failed to add credits constraint", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
