package database

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Isolation levels accepted by the unit of work
const (
	IsolationReadCommitted  = "READ COMMITTED"
	IsolationRepeatableRead = "REPEATABLE READ"
	IsolationSerializable   = "SERIALIZABLE"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	IsolationLevel  string
	RetryAttempts   int
	RetryDelay      time.Duration
	Retry           RetryConfig
}

// DefaultConfig returns a Config built from DQ_DB_* environment variables.
// Credentials have no defaults.
func DefaultConfig() *Config {
	return &Config{
		Driver:          envOrDefault("DQ_DB_DRIVER", "postgres"),
		Host:            os.Getenv("DQ_DB_HOST"),
		Port:            envAsInt("DQ_DB_PORT", 5432),
		Username:        os.Getenv("DQ_DB_USERNAME"),
		Password:        os.Getenv("DQ_DB_PASSWORD"),
		Database:        os.Getenv("DQ_DB_NAME"),
		SSLMode:         envOrDefault("DQ_DB_SSL_MODE", "disable"),
		MaxOpenConns:    envAsInt("DQ_DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envAsInt("DQ_DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: time.Duration(envAsInt("DQ_DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute,
		ConnMaxIdleTime: time.Duration(envAsInt("DQ_DB_CONN_MAX_IDLE_TIME_MINUTES", 5)) * time.Minute,
		QueryTimeout:    time.Duration(envAsInt("DQ_DB_QUERY_TIMEOUT_SECONDS", 10)) * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        envOrDefault("DQ_LOGGER_LEVEL", "info"),
		IsolationLevel:  IsolationReadCommitted,
		RetryAttempts:   envAsInt("DQ_DB_RETRY_ATTEMPTS", 3),
		RetryDelay:      time.Duration(envAsInt("DQ_DB_RETRY_DELAY_SECONDS", 5)) * time.Second,
		Retry:           DefaultRetryConfig(),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	if c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	switch c.SSLMode {
	case "disable", "require", "verify-ca", "verify-full", "prefer":
	default:
		return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
	}

	switch strings.ToUpper(c.IsolationLevel) {
	case IsolationReadCommitted, IsolationRepeatableRead, IsolationSerializable:
	default:
		return fmt.Errorf("invalid isolation level: %s", c.IsolationLevel)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}
	if c.Retry.MaxRetries < 1 {
		return fmt.Errorf("statement retries must be at least 1, got: %d", c.Retry.MaxRetries)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// WithQueryTimeout returns a copy of the config with updated query timeout
func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	newConfig := *c
	newConfig.QueryTimeout = timeout
	return &newConfig
}

// WithRetry returns a copy of the config with a different statement retry policy
func (c *Config) WithRetry(retry RetryConfig) *Config {
	newConfig := *c
	newConfig.Retry = retry
	return &newConfig
}

// ParsePort converts a port string from configuration, falling back to 5432
func ParsePort(port string) int {
	value, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil || value <= 0 {
		return 5432
	}
	return value
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
