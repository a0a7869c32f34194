package migration

import (
	"context"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
)

// AccountEnsurer creates an account with the default balance unless one exists
type AccountEnsurer interface {
	EnsureAccount(ctx context.Context, userID string) (*entity.Account, error)
}

// DevelopmentAccounts are seeded in the development environment for manual testing
var DevelopmentAccounts = []string{"dev-user-1", "dev-user-2", "dev-user-3"}

// SeedAccounts makes sure every listed user has an account
func SeedAccounts(ctx context.Context, ensurer AccountEnsurer, userIDs []string) error {
	for _, userID := range userIDs {
		if _, err := ensurer.EnsureAccount(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}
