package logger

import (
	"testing"

	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Run("should honour the configured level", func(t *testing.T) {
		observed, logs := observer.New(zap.DebugLevel)
		log := NewZapLoggerFromCore(observed, core.LogLevelWarn)

		log.Info("skipped", nil)
		log.Warn("kept", map[string]any{"user_id": "u1"})

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "kept", entry.Message)
		assert.Equal(t, "u1", entry.ContextMap()["user_id"])
	})

	t.Run("should change level at runtime", func(t *testing.T) {
		observed, logs := observer.New(zap.DebugLevel)
		log := NewZapLoggerFromCore(observed, core.LogLevelInfo)

		log.Debug("hidden", nil)
		log.SetLevel(core.LogLevelDebug)
		log.Debug("shown", nil)

		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "shown", logs.All()[0].Message)
	})

	t.Run("should build from options", func(t *testing.T) {
		log, err := NewZapLogger(Options{Production: true, Level: "error", Output: "stderr"})
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelError, log.GetLevel())
	})
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelError)

	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NotPanics(t, func() { log.Error("ignored", map[string]any{"k": "v"}) })
	assert.NoError(t, log.Flush())
}
