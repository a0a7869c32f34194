package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/docqa-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/persistence"
	timeadapter "github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/time"
)

// fakeStore is an in-memory ledger store with the same atomicity guarantees as the
// postgres repositories: row-level debit checks, atomic increments and a unique
// (user, payment ID) constraint.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[string]*entity.Account
	payments map[string]entity.Payment
	order    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*entity.Account),
		payments: make(map[string]entity.Payment),
	}
}

func paymentKey(userID, paymentID string) string {
	return userID + "/" + paymentID
}

func (f *fakeStore) seed(userID string, credits int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[userID] = entity.RestoreAccount(userID, credits, fixedTime, fixedTime)
}

func (f *fakeStore) credits(userID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accounts[userID].Credits()
}

func (f *fakeStore) paymentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payments)
}

// UnitOfWork

func (f *fakeStore) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeStore) Commit(context.Context) error                      { return nil }
func (f *fakeStore) Rollback(context.Context) error                    { return nil }

func (f *fakeStore) GetAccountRepository(context.Context) persistence.AccountRepository {
	return fakeAccounts{f}
}

func (f *fakeStore) GetPaymentRepository(context.Context) persistence.PaymentRepository {
	return fakePayments{f}
}

type fakeAccounts struct{ *fakeStore }

func (f fakeAccounts) GetByID(_ context.Context, userID string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[userID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *account
	return &copied, nil
}

func (f fakeAccounts) Create(_ context.Context, account *entity.Account) (*entity.Account, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.accounts[account.UserID]; ok {
		copied := *existing
		return &copied, false, nil
	}
	copied := *account
	f.accounts[account.UserID] = &copied
	return nil, true, nil
}

func (f fakeAccounts) Debit(_ context.Context, userID string, amount int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[userID]
	if !ok {
		return false, errs.ErrUserNotFound
	}
	if err := account.Debit(amount, timeadapter.NewRealTimeProvider()); err != nil {
		if errs.IsInsufficientBalanceError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f fakeAccounts) Increment(_ context.Context, userID string, amount int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	f.accounts[userID] = entity.RestoreAccount(userID, account.Credits()+amount, account.CreatedAt, fixedTime)
	return nil
}

type fakePayments struct{ *fakeStore }

func (f fakePayments) FindSucceeded(_ context.Context, userID, paymentID string) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[paymentKey(userID, paymentID)]
	if !ok || !payment.IsSucceeded() {
		return nil, nil
	}
	return &payment, nil
}

func (f fakePayments) FindByPaymentID(_ context.Context, userID, paymentID string) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[paymentKey(userID, paymentID)]
	if !ok {
		return nil, nil
	}
	return &payment, nil
}

func (f fakePayments) Create(_ context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := paymentKey(payment.UserID, payment.ID)
	if _, ok := f.payments[key]; ok {
		return errs.ErrPaymentAlreadyProcessed
	}
	f.payments[key] = *payment
	f.order = append(f.order, key)
	return nil
}

func (f fakePayments) ListByUser(_ context.Context, userID string) ([]entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []entity.Payment
	for _, key := range f.order {
		if p := f.payments[key]; p.UserID == userID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}
