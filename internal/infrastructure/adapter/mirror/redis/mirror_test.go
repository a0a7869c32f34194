package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestMirror(t *testing.T, ttl time.Duration) (*Mirror, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewMirror(client, "test", ttl), server
}

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
		m, _ := newTestMirror(t, 0)
		_, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should set and adjust with a hash", func(t *testing.T) {
		m, server := newTestMirror(t, 0)
		require.NoError(t, m.SetBalance(ctx, "user-1", 1000))
		require.NoError(t, m.AdjustBalance(ctx, "user-1", -400))

		credits, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(600), credits)
		assert.Equal(t, "600", server.HGet("test:account:user-1", "credits"))
	})

	t.Run("should ignore adjustments without a mirrored balance", func(t *testing.T) {
		m, server := newTestMirror(t, 0)
		require.NoError(t, m.AdjustBalance(ctx, "user-1", -5))

		_, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, server.Exists("test:account:user-1"))
	})

	t.Run("should expire after the ttl", func(t *testing.T) {
		m, server := newTestMirror(t, time.Minute)
		require.NoError(t, m.SetBalance(ctx, "user-1", 10))

		server.FastForward(2 * time.Minute)

		_, ok, err := m.Balance(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPayments(t *testing.T) {
	ctx := context.Background()

	t.Run("should read a replaced list newest first", func(t *testing.T) {
		m, _ := newTestMirror(t, time.Hour)
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{
			payment("pi_old", 0),
			payment("pi_new", 2*time.Hour),
			payment("pi_mid", time.Hour),
		}))

		payments, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"pi_new", "pi_mid", "pi_old"}, paymentIDs(payments))
		assert.Equal(t, int64(1000), payments[0].Amount)
		assert.True(t, base.Add(2*time.Hour).Equal(payments[0].CreatedAt))
	})

	t.Run("should insert added payments in order", func(t *testing.T) {
		m, _ := newTestMirror(t, 0)
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0), payment("pi_c", 2*time.Hour)}))

		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_b", time.Hour)))

		payments, _, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"pi_c", "pi_b", "pi_a"}, paymentIDs(payments))
	})

	t.Run("should key the list by payment ID and keep the first record", func(t *testing.T) {
		m, server := newTestMirror(t, time.Hour)
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))

		first := payment("pi_b", time.Hour)
		again := first
		again.Amount = 9999
		require.NoError(t, m.AddPayment(ctx, "user-1", first))
		require.NoError(t, m.AddPayment(ctx, "user-1", again))

		payments, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"pi_b", "pi_a"}, paymentIDs(payments))
		assert.Equal(t, int64(1000), payments[0].Amount)

		members, err := server.ZMembers("test:payments:user-1")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"pi_a", "pi_b"}, members)
		assert.True(t, server.Exists("test:payments:user-1:records"))
	})

	t.Run("should report a miss when a listed record is gone", func(t *testing.T) {
		m, server := newTestMirror(t, 0)
		require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))
		server.HDel("test:payments:user-1:records", "pi_a")

		_, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should treat an empty list as mirrored", func(t *testing.T) {
		m, _ := newTestMirror(t, 0)
		require.NoError(t, m.SetPayments(ctx, "user-1", nil))

		payments, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, payments)
	})

	t.Run("should ignore additions without a mirrored list", func(t *testing.T) {
		m, server := newTestMirror(t, 0)
		require.NoError(t, m.AddPayment(ctx, "user-1", payment("pi_a", 0)))

		_, ok, err := m.Payments(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, server.Exists("test:payments:user-1"))
	})
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	m, server := newTestMirror(t, 0)
	require.NoError(t, m.SetBalance(ctx, "user-1", 10))
	require.NoError(t, m.SetPayments(ctx, "user-1", []entity.Payment{payment("pi_a", 0)}))
	require.NoError(t, m.SetBalance(ctx, "user-2", 20))

	require.NoError(t, m.Invalidate(ctx, "user-1"))

	_, ok, _ := m.Balance(ctx, "user-1")
	assert.False(t, ok)
	_, ok, _ = m.Payments(ctx, "user-1")
	assert.False(t, ok)
	assert.False(t, server.Exists("test:payments:user-1"))
	assert.False(t, server.Exists("test:payments:user-1:records"))

	credits, ok, err := m.Balance(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(20), credits)
}

func TestUnavailableServer(t *testing.T) {
	ctx := context.Background()
	m, server := newTestMirror(t, 0)
	server.Close()

	_, _, err := m.Balance(ctx, "user-1")
	assert.Error(t, err)
	assert.Error(t, m.SetBalance(ctx, "user-1", 1))
}

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()

	client, err := Connect(context.Background(), Options{Addr: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	server.Close()
	_, err = Connect(context.Background(), Options{Addr: addr})
	assert.Error(t, err)
}
