package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Ledger      LedgerConfig     `mapstructure:"ledger"`
	QA          QAConfig         `mapstructure:"qa"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Retrieval   RetrievalConfig  `mapstructure:"retrieval"`
	Generation  GenerationConfig `mapstructure:"generation"`
	Mirror      MirrorConfig     `mapstructure:"mirror"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Events      EventsConfig     `mapstructure:"events"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds, 0 for streaming
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
	MaxUploadMB       int64         `mapstructure:"maxUploadMB"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowQueryMs     int           `mapstructure:"slowQueryMs"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	SeedAccounts    bool          `mapstructure:"seedAccounts"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
	SQLLevel   string `mapstructure:"sqlLevel"`
}

// LedgerConfig contains credit ledger settings
type LedgerConfig struct {
	DefaultCredits  int64 `mapstructure:"defaultCredits"`
	BonusCredits    int64 `mapstructure:"bonusCredits"`
	DebitMaxRetries int   `mapstructure:"debitMaxRetries"`
}

// QAConfig contains question answering settings
type QAConfig struct {
	QuestionCost    int64  `mapstructure:"questionCost"`
	SummaryCost     int64  `mapstructure:"summaryCost"`
	AnswerCost      int64  `mapstructure:"answerCost"`
	DefaultModel    string `mapstructure:"defaultModel"`
	SummaryWords    int    `mapstructure:"summaryWords"`
	SummaryLanguage string `mapstructure:"summaryLanguage"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	JWTSecret   string `mapstructure:"jwtSecret"`
	Issuer      string `mapstructure:"issuer"`
	// ServiceRole is the role claim that may grant credits and record payments
	ServiceRole string `mapstructure:"serviceRole"`
}

// RetrievalConfig contains Ragie client settings
type RetrievalConfig struct {
	BaseURL        string        `mapstructure:"baseURL"`
	APIKey         string        `mapstructure:"apiKey"`
	Scope          string        `mapstructure:"scope"`
	Timeout        time.Duration `mapstructure:"timeout"` // seconds
	RateLimit      float64       `mapstructure:"rateLimit"`
	RateLimitBurst int           `mapstructure:"rateLimitBurst"`
}

// ProviderConfig is one OpenAI-compatible chat completion endpoint
type ProviderConfig struct {
	BaseURL string `mapstructure:"baseURL"`
	APIKey  string `mapstructure:"apiKey"`
}

// GenerationConfig contains LLM provider settings keyed by provider name
type GenerationConfig struct {
	Timeout   time.Duration             `mapstructure:"timeout"` // seconds
	RateLimit float64                   `mapstructure:"rateLimit"`
	Providers map[string]ProviderConfig `mapstructure:"providers"`
}

// MirrorConfig selects the account mirror backend
type MirrorConfig struct {
	Backend string        `mapstructure:"backend"` // memory or redis
	TTL     time.Duration `mapstructure:"ttl"`     // minutes
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// EventsConfig contains ledger event publishing settings
type EventsConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}
