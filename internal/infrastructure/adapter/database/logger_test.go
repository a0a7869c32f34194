package database

import (
	"context"
	"errors"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	corem "github.com/amirhossein-jamali/docqa-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "accounts", extractTableName(`SELECT * FROM "accounts" WHERE user_id = $1`))
	assert.Equal(t, "payments", extractTableName(`INSERT INTO "payments" ("user_id") VALUES ($1)`))
	assert.Equal(t, "accounts", extractTableName(`UPDATE "accounts" SET "credits"=credits - $1`))
	assert.Equal(t, "", extractTableName(`SET TRANSACTION ISOLATION LEVEL READ COMMITTED`))
	assert.Equal(t, "UPDATE", extractQueryType(" update accounts set credits = 1"))
}

func TestDatabaseLoggerTrace(t *testing.T) {
	sql := func() (string, int64) { return `SELECT * FROM "accounts"`, 1 }

	t.Run("should not report record-not-found as an error", func(t *testing.T) {
		log := corem.NewMockLogger(t)
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(log, nil, "info", time.Hour)
		dbLogger.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	})

	t.Run("should report driver errors with the request id", func(t *testing.T) {
		log := corem.NewMockLogger(t)
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-1" && fields["table"] == "accounts"
		})).Once()

		dbLogger := NewDatabaseLogger(log, nil, "warn", time.Hour)
		ctx := coreport.WithRequestID(context.Background(), "req-1")
		dbLogger.Trace(ctx, time.Now(), sql, errors.New("boom"))
	})

	t.Run("should warn on slow queries", func(t *testing.T) {
		log := corem.NewMockLogger(t)
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		dbLogger := NewDatabaseLogger(log, nil, "warn", time.Millisecond)
		dbLogger.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	})

	t.Run("should stay silent", func(t *testing.T) {
		log := corem.NewMockLogger(t)

		dbLogger := NewDatabaseLogger(log, nil, "info", time.Millisecond).LogMode(logger.Silent)
		dbLogger.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
	})
}
