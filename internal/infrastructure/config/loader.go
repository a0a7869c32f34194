package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DQ"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// secretOverrides maps environment variables to the keys they replace.
// They are applied explicitly so secrets never need to live in the yaml files.
var secretOverrides = map[string]string{
	"DQ_DB_HOST":           "database.host",
	"DQ_DB_PORT":           "database.port",
	"DQ_DB_USERNAME":       "database.username",
	"DQ_DB_PASSWORD":       "database.password",
	"DQ_DB_NAME":           "database.database",
	"DQ_DB_SSL_MODE":       "database.sslMode",
	"DQ_AUTH_JWT_SECRET":   "auth.jwtSecret",
	"DQ_RAGIE_API_KEY":     "retrieval.apiKey",
	"DQ_RAGIE_BASE_URL":    "retrieval.baseURL",
	"DQ_OPENAI_API_KEY":    "generation.providers.openai.apiKey",
	"DQ_GOOGLE_API_KEY":    "generation.providers.google.apiKey",
	"DQ_MISTRAL_API_KEY":   "generation.providers.mistral.apiKey",
	"DQ_ANTHROPIC_API_KEY": "generation.providers.anthropic.apiKey",
	"DQ_FIREWORKS_API_KEY": "generation.providers.fireworks.apiKey",
	"DQ_REDIS_ADDR":        "redis.addr",
	"DQ_REDIS_PASSWORD":    "redis.password",
	"DQ_SERVER_PORT":       "server.port",
	"DQ_LOGGER_LEVEL":      "logger.level",
	"DQ_MIRROR_BACKEND":    "mirror.backend",
}

// LoadConfig loads configuration for the environment named by DQ_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the given directories and applies environment overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 0) // answers are streamed
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("server.maxUploadMB", 50)

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.slowQueryMs", 200)
	v.SetDefault("database.isolationLevel", "READ COMMITTED")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)
	v.SetDefault("database.seedAccounts", false)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
	v.SetDefault("logger.sqlLevel", "warn")

	v.SetDefault("ledger.defaultCredits", 1000)
	v.SetDefault("ledger.bonusCredits", 1)
	v.SetDefault("ledger.debitMaxRetries", 5)

	v.SetDefault("qa.questionCost", 1)
	v.SetDefault("qa.summaryCost", 1)
	v.SetDefault("qa.answerCost", 1)
	v.SetDefault("qa.defaultModel", "gpt-4o")
	v.SetDefault("qa.summaryWords", 100)
	v.SetDefault("qa.summaryLanguage", "English")

	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.serviceRole", "service")

	v.SetDefault("retrieval.baseURL", "https://api.ragie.ai")
	v.SetDefault("retrieval.scope", "tutorial")
	v.SetDefault("retrieval.timeout", 30)
	v.SetDefault("retrieval.rateLimit", 10)
	v.SetDefault("retrieval.rateLimitBurst", 5)

	v.SetDefault("generation.timeout", 120)
	v.SetDefault("generation.rateLimit", 20)

	v.SetDefault("mirror.backend", "memory")
	v.SetDefault("mirror.ttl", 60)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "docqa")

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic", "ledger-events")
}

// getEnvironment reads DQ_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv("DQ_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides gives environment variables precedence over the yaml files
func processEnvOverrides(v *viper.Viper) {
	for envKey, configKey := range secretOverrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	if brokers := os.Getenv("DQ_KAFKA_BROKERS"); brokers != "" {
		v.Set("events.brokers", strings.Split(brokers, ","))
	}
	if enabled := os.Getenv("DQ_EVENTS_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			v.Set("events.enabled", parsed)
		}
	}
	if enabled := os.Getenv("DQ_AUTH_ENABLED"); enabled != "" {
		if parsed, err := strconv.ParseBool(enabled); err == nil {
			v.Set("auth.enabled", parsed)
		}
	}
	if maxOpenConns := getEnvInt("DQ_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if defaultCredits := getEnvInt("DQ_LEDGER_DEFAULT_CREDITS", -1); defaultCredits >= 0 {
		v.Set("ledger.defaultCredits", defaultCredits)
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw integers read from yaml into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Retrieval.Timeout = time.Duration(config.Retrieval.Timeout) * time.Second
	config.Generation.Timeout = time.Duration(config.Generation.Timeout) * time.Second
	config.Mirror.TTL = time.Duration(config.Mirror.TTL) * time.Minute
}
