package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
)

type accountView struct {
	credits     int64
	hasBalance  bool
	payments    []entity.Payment
	hasPayments bool
}

// Mirror keeps account views in process memory
type Mirror struct {
	mu       sync.RWMutex
	accounts map[string]*accountView
}

var _ service.Mirror = (*Mirror)(nil)

// NewMirror creates an empty in-memory mirror
func NewMirror() *Mirror {
	return &Mirror{accounts: make(map[string]*accountView)}
}

// view returns the user's entry, creating it; callers hold the write lock
func (m *Mirror) view(userID string) *accountView {
	v, ok := m.accounts[userID]
	if !ok {
		v = &accountView{}
		m.accounts[userID] = v
	}
	return v
}

// SetBalance replaces the mirrored balance
func (m *Mirror) SetBalance(_ context.Context, userID string, credits int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.view(userID)
	v.credits = credits
	v.hasBalance = true
	return nil
}

// AdjustBalance applies delta to a mirrored balance
func (m *Mirror) AdjustBalance(_ context.Context, userID string, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.accounts[userID]; ok && v.hasBalance {
		v.credits += delta
	}
	return nil
}

// Balance returns the mirrored balance
func (m *Mirror) Balance(_ context.Context, userID string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.accounts[userID]
	if !ok || !v.hasBalance {
		return 0, false, nil
	}
	return v.credits, true, nil
}

// SetPayments replaces the mirrored payment list
func (m *Mirror) SetPayments(_ context.Context, userID string, payments []entity.Payment) error {
	sorted := make([]entity.Payment, len(payments))
	copy(sorted, payments)
	entity.SortPaymentsByCreatedAtDesc(sorted)

	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.view(userID)
	v.payments = sorted
	v.hasPayments = true
	return nil
}

// AddPayment inserts payment at its position in the newest-first list.
// A payment whose ID is already listed is left as it is.
func (m *Mirror) AddPayment(_ context.Context, userID string, payment entity.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.accounts[userID]
	if !ok || !v.hasPayments {
		return nil
	}
	for _, existing := range v.payments {
		if existing.ID == payment.ID {
			return nil
		}
	}

	i := sort.Search(len(v.payments), func(i int) bool {
		return !v.payments[i].CreatedAt.After(payment.CreatedAt)
	})
	v.payments = append(v.payments, entity.Payment{})
	copy(v.payments[i+1:], v.payments[i:])
	v.payments[i] = payment
	return nil
}

// Payments returns a copy of the mirrored payment list
func (m *Mirror) Payments(_ context.Context, userID string) ([]entity.Payment, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.accounts[userID]
	if !ok || !v.hasPayments {
		return nil, false, nil
	}
	out := make([]entity.Payment, len(v.payments))
	copy(out, v.payments)
	return out, true, nil
}

// Invalidate drops the user's entry
func (m *Mirror) Invalidate(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.accounts, userID)
	return nil
}
