package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func payment(id string, offset time.Duration) entity.Payment {
	return entity.Payment{
		ID:        id,
		UserID:    "user-1",
		Amount:    1000,
		Status:    entity.PaymentStatusSucceeded,
		CreatedAt: base.Add(offset),
	}
}

func paymentIDs(payments []entity.Payment) []string {
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should report nothing for an unknown user", func(t *testing.T) {
		m := NewMirror()
		_, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should set and adjust", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetBalance(ctx, "user-1", 1000))
		require.NoError(t, m.AdjustBalance(ctx, "user-1", -400))

		credits, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(600), credits)
	})

	t.Run("should ignore adjustments without a mirrored balance", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.AdjustBalance(ctx, "user-1", -5))

		_, ok, _ := m.Balance(ctx, "user-1")
		assert.False(t, ok)
	})

	t.Run("should apply concurrent adjustments exactly", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetBalance(ctx, "user-1", 0))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = m.AdjustBalance(ctx, "user-1", 2)
			}()
		}
		wg.Wait()

		credits, _, _ := m.Balance(ctx, "user-1")
		assert.Equal(t, int64(100), credits)
	})
}

func TestPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("should sort a replaced list newest first", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{
			payment("pi_old", 0),
			payment("pi_new", 2*time.Hour),
			payment("pi_mid", time.Hour),
		}))

		payments, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"pi_new", "pi_mid", "pi_old"}, paymentIDs(payments))
	})

	t.Run("should insert added payments in order", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0), payment("pi_c", 2*time.Hour)}))

		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_b", time.Hour)))
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_d", 3*time.Hour)))

		payments, _, _ := m.Payments(ctx, "user-1")
		assert.Equal(t, []string{"pi_d", "pi_c", "pi_b", "pi_a"}, paymentIDs(payments))
	})

	t.Run("should not list a payment twice when it is added again", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))

		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_b", time.Hour)))
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_b", time.Hour)))
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_a", 2*time.Hour)))

		payments, _, _ := m.Payments(ctx, "user-1")
		assert.Equal(t, []string{"pi_b", "pi_a"}, paymentIDs(payments))
	})

	t.Run("should treat an empty list as mirrored", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetPayments(ctx, "user-1", nil))
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_a", 0)))

		payments, ok, _ := m.Payments(ctx, "user-1")
		assert.True(t, ok)
		assert.Equal(t, []string{"pi_a"}, paymentIDs(payments))
	})

	t.Run("should ignore additions without a mirrored list", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_a", 0)))

		_, ok, _ := m.Payments(ctx, "user-1")
		assert.False(t, ok)
	})

	t.Run("should hand out copies", func(t *testing.T) {
		m := NewMirror()
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))

		payments, _, _ := m.Payments(ctx, "user-1")
		payments[0].ID = "changed"

		again, _, _ := m.Payments(ctx, "user-1")
		assert.Equal(t, "pi_a", again[0].ID)
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	m := NewMirror()
	require.NoError(t, m.SetBalance(ctx, "user-1", 10))
	require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))
	require.NoError(t, m.SetBalance(ctx, "user-2", 20))

	require.NoError(t, m.Invalidate(ctx, "user-1"))

	_, ok, _ := m.Balance(ctx, "user-1")
	assert.False(t, ok)
	_, ok, _ = m.Payments(ctx, "user-1")
	assert.False(t, ok)
	credits, ok, _ := m.Balance(ctx, "user-2")
	assert.True(t, ok)
	assert.Equal(t, int64(20), credits)
}
