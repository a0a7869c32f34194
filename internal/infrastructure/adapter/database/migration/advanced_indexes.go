package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes the GORM tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Serves the processed-payment check
		name: "idx_payments_succeeded",
		sql: `CREATE INDEX IF NOT EXISTS idx_payments_succeeded
			ON payments (user_id, payment_id)
			WHERE status = 'succeeded'`,
	},
	{
		// Serves the newest-first payment history
		name: "idx_payments_user_created_at",
		sql: `CREATE INDEX IF NOT EXISTS idx_payments_user_created_at
			ON payments (user_id, created_at DESC)`,
	},
}

// CreateAdvancedIndexes creates the partial and composite payment indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// CreatePerformanceTweaks applies storage settings. Failures are logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	// Balance rows are updated in place on every debit; leave room for HOT updates
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE accounts SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for accounts table", map[string]any{
			"error": err.Error(),
		})
	}
}
