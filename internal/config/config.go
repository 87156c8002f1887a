package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultAIBaseURL       = "https://api.anthropic.com"
	DefaultAIModel         = "claude-sonnet-4-20250514"
	DefaultAITimeout       = 60 * time.Second
	DefaultAIRatePerMin    = 10
	DefaultLoginRatePerMin = 20
	DefaultCatalogCacheMB  = 16
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// ai trainer
	AIBaseURL         string        `toml:"ai_base_url"`
	AIModel           string        `toml:"ai_model"`
	AITimeout         time.Duration `toml:"ai_timeout"`
	AIRateLimitPerMin int           `toml:"ai_rate_limit_per_min"`

	// auth
	AuthJWTIssuer           string        `toml:"auth_jwt_issuer"`
	LoginRateLimitPerMin    int           `toml:"login_rate_limit_per_min"`
	SessionsCleanupInterval time.Duration `toml:"sessions_cleanup_interval"`

	CatalogCacheSizeMB int      `toml:"catalog_cache_size_mb"`
	AllowedOrigins     []string `toml:"allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.setDefaults()

	return cfg, nil
}

// Load reads the TOML file at path and returns the config section of the given env
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.AIBaseURL == "" {
		c.AIBaseURL = DefaultAIBaseURL
	}
	if c.AIModel == "" {
		c.AIModel = DefaultAIModel
	}
	if c.AITimeout <= 0 {
		c.AITimeout = DefaultAITimeout
	}
	if c.AIRateLimitPerMin <= 0 {
		c.AIRateLimitPerMin = DefaultAIRatePerMin
	}
	if c.LoginRateLimitPerMin <= 0 {
		c.LoginRateLimitPerMin = DefaultLoginRatePerMin
	}
	if c.SessionsCleanupInterval <= 0 {
		c.SessionsCleanupInterval = time.Hour
	}
	if c.CatalogCacheSizeMB <= 0 {
		c.CatalogCacheSizeMB = DefaultCatalogCacheMB
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
}
