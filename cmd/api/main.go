package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/port/service"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/docqa-ledger/internal/domain/usecase/qa"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/events"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/events/kafka"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/generation/openai"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/logger"
	memorymirror "github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/mirror/memory"
	redismirror "github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/mirror/redis"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/retrieval/ragie"
	timeProvider "github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/docqa-ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Mirror backends accepted by mirror.backend
const (
	mirrorBackendMemory = "memory"
	mirrorBackendRedis  = "redis"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Ledger store
	dbManager := database.NewManager(newDatabaseConfig(cfg), appLogger, tp)
	if err := dbManager.Connect(ctx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer closeQuietly(appLogger, "database", dbManager.Close)

	if err := dbManager.Migrate(ctx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	mirror, closeMirror, err := newMirror(ctx, cfg)
	if err != nil {
		appLogger.Error("Failed to set up account mirror", map[string]any{
			"backend": cfg.Mirror.Backend,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer closeQuietly(appLogger, "mirror", closeMirror)

	publisher, err := newPublisher(ctx, cfg, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to set up event publisher", map[string]any{
			"brokers": cfg.Events.Brokers,
			"error":   err.Error(),
		})
		os.Exit(1)
	}
	defer closeQuietly(appLogger, "event publisher", publisher.Close)

	// Use cases
	ledgerService := ledger.NewLedgerService(
		ledger.Config{
			DefaultCredits: cfg.Ledger.DefaultCredits,
			Bonus:          ledger.FlatBonus(cfg.Ledger.BonusCredits),
		},
		uow,
		mirror,
		publisher,
		tp,
		appLogger,
	)

	if cfg.Environment == config.Development && cfg.Database.SeedAccounts {
		if err := migration.SeedAccounts(ctx, ledgerService, migration.DevelopmentAccounts); err != nil {
			appLogger.Error("Failed to seed development accounts", map[string]any{
				"error": err.Error(),
			})
		}
	}

	retriever := ragie.NewClient(ragie.Config{
		BaseURL:        cfg.Retrieval.BaseURL,
		APIKey:         cfg.Retrieval.APIKey,
		Timeout:        cfg.Retrieval.Timeout,
		RateLimit:      cfg.Retrieval.RateLimit,
		RateLimitBurst: cfg.Retrieval.RateLimitBurst,
	}, appLogger)

	generator := openai.NewClient(newGenerationConfig(cfg), appLogger)

	qaService := qa.NewQAService(
		qa.Config{
			QuestionCost:    cfg.QA.QuestionCost,
			SummaryCost:     cfg.QA.SummaryCost,
			AnswerCost:      cfg.QA.AnswerCost,
			DefaultModel:    cfg.QA.DefaultModel,
			Scope:           cfg.Retrieval.Scope,
			SummaryWords:    cfg.QA.SummaryWords,
			SummaryLanguage: cfg.QA.SummaryLanguage,
		},
		ledgerService,
		retriever,
		generator,
		openai.NewDefaultCatalog(),
		appLogger,
	)

	// HTTP surface
	handlers := routes.Handlers{
		Ledger: handler.NewLedgerHandler(ledgerService, appLogger),
		QA:     handler.NewQAHandler(qaService, cfg.Server.MaxUploadMB<<20, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
	}

	var authConfig *middleware.AuthConfig
	if cfg.Auth.Enabled {
		authConfig = &middleware.AuthConfig{
			Secret:      cfg.Auth.JWTSecret,
			Issuer:      cfg.Auth.Issuer,
			ServiceRole: cfg.Auth.ServiceRole,
		}
	} else {
		appLogger.Warn("Bearer token checks are disabled", map[string]any{
			"env": cfg.Environment,
		})
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers, authConfig, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":          server.Addr,
			"env":           cfg.Environment,
			"mirror":        cfg.Mirror.Backend,
			"events":        cfg.Events.Enabled,
			"auth":          cfg.Auth.Enabled,
			"default_model": cfg.QA.DefaultModel,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := tp.WithTimeout(ctx, coreport.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// newDatabaseConfig maps the application config onto the store settings
func newDatabaseConfig(cfg *config.Config) *database.Config {
	retry := database.DefaultRetryConfig()
	if cfg.Ledger.DebitMaxRetries > 0 {
		retry.MaxRetries = cfg.Ledger.DebitMaxRetries
	}

	return &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		SlowThreshold:   time.Duration(cfg.Database.SlowQueryMs) * time.Millisecond,
		LogLevel:        cfg.Logger.SQLLevel,
		IsolationLevel:  cfg.Database.IsolationLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		Retry:           retry,
	}
}

// newGenerationConfig copies the configured provider endpoints
func newGenerationConfig(cfg *config.Config) openai.Config {
	providers := make(map[string]openai.ProviderConfig, len(cfg.Generation.Providers))
	for name, provider := range cfg.Generation.Providers {
		providers[strings.ToLower(name)] = openai.ProviderConfig{
			BaseURL: provider.BaseURL,
			APIKey:  provider.APIKey,
		}
	}

	return openai.Config{
		Providers: providers,
		Timeout:   cfg.Generation.Timeout,
		RateLimit: cfg.Generation.RateLimit,
	}
}

// newMirror builds the configured account mirror and the function releasing it
func newMirror(ctx context.Context, cfg *config.Config) (service.Mirror, func() error, error) {
	switch cfg.Mirror.Backend {
	case mirrorBackendRedis:
		client, err := redismirror.Connect(ctx, redismirror.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redismirror.NewMirror(client, cfg.Redis.KeyPrefix, cfg.Mirror.TTL), client.Close, nil
	default:
		return memorymirror.NewMirror(), func() error { return nil }, nil
	}
}

// newPublisher returns a kafka publisher when events are enabled and a logging no-op otherwise
func newPublisher(ctx context.Context, cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) (service.EventPublisher, error) {
	if !cfg.Events.Enabled {
		return events.NewNoopPublisher(appLogger), nil
	}

	publisher, err := kafka.NewPublisher(ctx, kafka.Config{
		Brokers: cfg.Events.Brokers,
		Topic:   cfg.Events.Topic,
	}, tp, appLogger)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

func closeQuietly(appLogger coreport.Logger, name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		appLogger.Warn("Failed to close resource", map[string]any{
			"resource": name,
			"error":    err.Error(),
		})
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	databaseSettings := []struct {
		value  string
		key    string
		envVar string
	}{
		{cfg.Database.Host, "database.host", "DQ_DB_HOST"},
		{cfg.Database.Port, "database.port", "DQ_DB_PORT"},
		{cfg.Database.Username, "database.username", "DQ_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "DQ_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "DQ_DB_NAME"},
	}
	for _, setting := range databaseSettings {
		if setting.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", setting.key, setting.envVar))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Validate ledger and question answering settings
	if cfg.Ledger.DefaultCredits < 0 {
		return fmt.Errorf("ledger.defaultCredits cannot be negative: %d", cfg.Ledger.DefaultCredits)
	}
	if cfg.Ledger.BonusCredits < 0 {
		return fmt.Errorf("ledger.bonusCredits cannot be negative: %d", cfg.Ledger.BonusCredits)
	}
	if cfg.QA.QuestionCost <= 0 || cfg.QA.SummaryCost <= 0 || cfg.QA.AnswerCost <= 0 {
		return fmt.Errorf("qa costs must be positive")
	}
	if cfg.QA.DefaultModel == "" {
		missingConfigs = append(missingConfigs, "qa.defaultModel")
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or DQ_AUTH_JWT_SECRET environment variable)")
	}

	switch cfg.Mirror.Backend {
	case mirrorBackendMemory:
	case mirrorBackendRedis:
		if cfg.Redis.Addr == "" {
			missingConfigs = append(missingConfigs, "redis.addr (or DQ_REDIS_ADDR environment variable)")
		}
	default:
		return fmt.Errorf("invalid mirror.backend value: %s, must be one of: %s or %s",
			cfg.Mirror.Backend, mirrorBackendMemory, mirrorBackendRedis)
	}

	if cfg.Events.Enabled && len(cfg.Events.Brokers) == 0 {
		missingConfigs = append(missingConfigs, "events.brokers (or DQ_KAFKA_BROKERS environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if !cfg.Auth.Enabled {
			warnings = append(warnings, "auth.enabled should be true in production")
		}

		if cfg.Retrieval.APIKey == "" {
			warnings = append(warnings, "retrieval.apiKey is empty, questions will fail")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
