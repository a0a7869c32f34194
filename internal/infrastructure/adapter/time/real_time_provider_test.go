package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	provider := NewRealTimeProvider()

	t.Run("should report UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, provider.Now().Location())
	})

	t.Run("should measure elapsed time", func(t *testing.T) {
		start := provider.Now()
		provider.Sleep(5 * core.Millisecond)
		assert.GreaterOrEqual(t, provider.Since(start).Std(), 5*time.Millisecond)
	})

	t.Run("should expire the timeout context", func(t *testing.T) {
		ctx, cancel := provider.WithTimeout(context.Background(), core.Millisecond)
		defer cancel()

		<-ctx.Done()
		assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	})
}
