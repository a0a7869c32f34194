package ledger

import "github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"

// BonusPolicy decides how many credits a confirmed payment is worth
type BonusPolicy interface {
	CreditsFor(amount int64) (int64, error)
}

// FlatBonus grants the paid amount plus a fixed number of extra credits
type FlatBonus int64

// CreditsFor returns amount plus the bonus
func (b FlatBonus) CreditsFor(amount int64) (int64, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return 0, err
	}
	return entity.AddAmounts(amount, int64(b))
}
