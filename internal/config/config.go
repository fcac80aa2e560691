package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	Study      StudyConfig      `yaml:"study"`
	Generation GenerationConfig `yaml:"generation"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName  string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"flashcards-api"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"30s"` // zero disables
}

// AuthConfig holds bearer token validation settings. Tokens are issued by
// the identity provider; this service only verifies them.
type AuthConfig struct {
	JWTSecret   string        `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string        `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"   env-default:"flashcards"`
	JWTAudience string        `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"AUTH_TOKEN_TTL"    env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds study session parameters.
type StudyConfig struct {
	DefaultMaxCards int     `yaml:"default_max_cards" env:"STUDY_DEFAULT_MAX_CARDS" env-default:"20"`
	NewCardRatio    float64 `yaml:"new_card_ratio"    env:"STUDY_NEW_CARD_RATIO"    env-default:"0.3"`
	// ShuffleSeed makes MIXED selection reproducible. Zero means random.
	ShuffleSeed uint64 `yaml:"shuffle_seed" env:"STUDY_SHUFFLE_SEED" env-default:"0"`
}

// GenerationConfig holds AI flashcard generation settings.
type GenerationConfig struct {
	APIKey       string        `yaml:"api_key"       env:"GENERATION_API_KEY"`
	BaseURL      string        `yaml:"base_url"      env:"GENERATION_BASE_URL"      env-default:"https://openrouter.ai/api/v1"`
	Model        string        `yaml:"model"         env:"GENERATION_MODEL"         env-default:"anthropic/claude-3.5-sonnet"`
	MaxTokens    int           `yaml:"max_tokens"    env:"GENERATION_MAX_TOKENS"    env-default:"2000"`
	Temperature  float32       `yaml:"temperature"   env:"GENERATION_TEMPERATURE"   env-default:"0.3"`
	Timeout      time.Duration `yaml:"timeout"       env:"GENERATION_TIMEOUT"       env-default:"60s"`
	MaxRetries   int           `yaml:"max_retries"   env:"GENERATION_MAX_RETRIES"   env-default:"2"`
	SiteURL      string        `yaml:"site_url"      env:"GENERATION_SITE_URL"`
	SiteName     string        `yaml:"site_name"     env:"GENERATION_SITE_NAME"     env-default:"Flashcards"`
	SessionTTL   time.Duration `yaml:"session_ttl"   env:"GENERATION_SESSION_TTL"   env-default:"30m"`
	QuotaPerHour int           `yaml:"quota_per_hour" env:"GENERATION_QUOTA_PER_HOUR" env-default:"10"`
}

// RateLimitConfig holds per-client HTTP rate limiting settings.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}
