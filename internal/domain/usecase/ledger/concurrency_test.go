package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/entity"
	servicemocks "github.com/amirhossein-jamali/docqa-ledger/mocks/port/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPermissiveMirror(t *testing.T) *servicemocks.MockMirror {
	mirror := servicemocks.NewMockMirror(t)
	mirror.EXPECT().SetBalance(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	mirror.EXPECT().AdjustBalance(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	mirror.EXPECT().AddPayment(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	mirror.EXPECT().SetPayments(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	mirror.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil).Maybe()
	return mirror
}

func newStoreBackedService(t *testing.T, store *fakeStore) *Service {
	publisher := servicemocks.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewLedgerService(DefaultConfig(), store, newPermissiveMirror(t), publisher, newFixedClock(t), newQuietLogger(t))
}

func TestLedgerProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject a debit larger than the balance without mutation", func(t *testing.T) {
		store := newFakeStore()
		store.seed("user-1", 1000)
		svc := newStoreBackedService(t, store)

		ok, err := svc.Debit(ctx, "user-1", 1500)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1000), store.credits("user-1"))
	})

	t.Run("should debit when the balance covers the amount", func(t *testing.T) {
		store := newFakeStore()
		store.seed("user-1", 1000)
		svc := newStoreBackedService(t, store)

		ok, err := svc.Debit(ctx, "user-1", 400)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(600), store.credits("user-1"))
	})

	t.Run("should find a recorded payment by its ID", func(t *testing.T) {
		store := newFakeStore()
		svc := newStoreBackedService(t, store)

		_, created, err := svc.RecordPayment(ctx, "user-1", "pay_1", 500, "succeeded")
		require.NoError(t, err)
		require.True(t, created)

		payment, err := svc.IsPaymentRecorded(ctx, "user-1", "pay_1")
		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, int64(500), payment.Amount)
	})

	t.Run("should credit amount plus bonus once and log the payment once", func(t *testing.T) {
		store := newFakeStore()
		store.seed("user-1", 1000)
		svc := newStoreBackedService(t, store)
		descriptor := entity.PaymentDescriptor{ID: "pi_abc", Amount: 10000, Status: "succeeded"}

		first, err := svc.ConfirmPayment(ctx, "user-1", descriptor)
		require.NoError(t, err)
		second, err := svc.ConfirmPayment(ctx, "user-1", descriptor)
		require.NoError(t, err)

		assert.Equal(t, entity.OutcomeCredited, first.Outcome)
		assert.Equal(t, entity.OutcomeAlreadyProcessed, second.Outcome)
		assert.Equal(t, int64(11001), store.credits("user-1"))
		assert.Equal(t, 1, store.paymentCount())

		payments, err := svc.ListPayments(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, "pi_abc", payments[0].ID)
	})

	t.Run("should leave everything untouched for a failed payment", func(t *testing.T) {
		store := newFakeStore()
		store.seed("user-1", 1000)
		svc := newStoreBackedService(t, store)

		result, err := svc.ConfirmPayment(ctx, "user-1", entity.PaymentDescriptor{ID: "pi_x", Amount: 10000, Status: "failed"})

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeValidationFailed, result.Outcome)
		assert.Equal(t, int64(1000), store.credits("user-1"))
		assert.Equal(t, 0, store.paymentCount())
	})
}

func TestConcurrentDebits(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.seed("user-1", 1000)
	svc := newStoreBackedService(t, store)

	const workers = 50
	const amount = int64(30)
	var successes atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := svc.Debit(ctx, "user-1", amount)
			assert.NoError(t, err)
			if ok {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	final := store.credits("user-1")
	assert.Equal(t, int64(1000)-amount*successes.Load(), final)
	assert.GreaterOrEqual(t, final, int64(0))
	assert.Equal(t, int64(33), successes.Load())
}

func TestConcurrentCredits(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.seed("user-1", 1000)
	svc := newStoreBackedService(t, store)

	amounts := []int64{5, 70, 300, 1, 24}
	var wg sync.WaitGroup
	for _, amount := range amounts {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			_, err := svc.Credit(ctx, "user-1", amount)
			assert.NoError(t, err)
		}(amount)
	}
	wg.Wait()

	assert.Equal(t, int64(1400), store.credits("user-1"))
}

func TestConcurrentConfirmations(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.seed("user-1", 1000)
	svc := newStoreBackedService(t, store)
	descriptor := entity.PaymentDescriptor{ID: "pi_race", Amount: 2500, Status: "succeeded"}

	const workers = 10
	var credited atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := svc.ConfirmPayment(ctx, "user-1", descriptor)
			assert.NoError(t, err)
			if result.Credited() {
				credited.Add(1)
			} else {
				assert.Equal(t, entity.OutcomeAlreadyProcessed, result.Outcome)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), credited.Load())
	assert.Equal(t, 1, store.paymentCount())
	assert.Equal(t, int64(1000+2501), store.credits("user-1"))
}
