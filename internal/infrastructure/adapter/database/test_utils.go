package database

import (
	"context"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/time"
)

// TestDBManager provides utilities for integration tests against a real postgres
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the database named by TEST_DB_* variables and migrates it.
// The test is skipped when TEST_DB_HOST is unset.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host, ok := os.LookupEnv("TEST_DB_HOST")
	if !ok || host == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration test")
	}

	timeProvider := timeprovider.NewRealTimeProvider()
	config := &Config{
		Driver:          "postgres",
		Host:            host,
		Port:            envAsInt("TEST_DB_PORT", 5432),
		Username:        envOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        envOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        envOrDefault("TEST_DB_DATABASE", "docqa_ledger_test"),
		SSLMode:         envOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		SlowThreshold:   time.Second,
		LogLevel:        "silent",
		IsolationLevel:  IsolationReadCommitted,
		RetryAttempts:   1,
		RetryDelay:      time.Second,
		Retry:           DefaultRetryConfig(),
	}

	manager := NewManager(config, logger, timeProvider)
	if err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	m := &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
	t.Cleanup(func() { m.Close(t) })

	m.SetupTestDB(t)
	return m
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every table and migrates from scratch
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// TruncateLedgerTables empties accounts and payments
func (m *TestDBManager) TruncateLedgerTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE accounts, payments RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestAccount inserts an account with the given balance
func (m *TestDBManager) CreateTestAccount(t *testing.T, userID string, credits int64) {
	t.Helper()

	now := m.TimeProvider.Now().UTC()
	account := model.Account{
		UserID:    userID,
		Credits:   credits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.Manager.DB().Create(&account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
}
