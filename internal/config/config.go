// AngelaMos | 2026
// config.go

package config

import (
	"fmt"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App          AppConfig          `koanf:"app"`
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	Redis        RedisConfig        `koanf:"redis"`
	JWT          JWTConfig          `koanf:"jwt"`
	RateLimit    RateLimitConfig    `koanf:"rate_limit"`
	CORS         CORSConfig         `koanf:"cors"`
	Log          LogConfig          `koanf:"log"`
	Otel         OtelConfig         `koanf:"otel"`
	Tenant       TenantConfig       `koanf:"tenant"`
	Subscription SubscriptionConfig `koanf:"subscription"`
	Events       EventsConfig       `koanf:"events"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
	KeyPrefix    string `koanf:"key_prefix"`
}

// JWTConfig describes the identity token boundary. The API only needs the
// public key; the private key is used by aurexctl to mint development tokens.
type JWTConfig struct {
	PrivateKeyPath    string        `koanf:"private_key_path"`
	PublicKeyPath     string        `koanf:"public_key_path"`
	AccessTokenExpire time.Duration `koanf:"access_token_expire"`
	Issuer            string        `koanf:"issuer"`
	Audience          string        `koanf:"audience"`
}

// RateLimitConfig holds the per-IP guard in front of token verification and
// the per-user budgets keyed by subscription tier.
type RateLimitConfig struct {
	Requests int                 `koanf:"requests"`
	Window   time.Duration       `koanf:"window"`
	Burst    int                 `koanf:"burst"`
	Tiers    map[string]RateTier `koanf:"tiers"`
}

type RateTier struct {
	Requests int `koanf:"requests"`
	Burst    int `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

type TenantConfig struct {
	DefaultCompanyName string `koanf:"default_company_name"`
	DefaultCurrency    string `koanf:"default_currency"`
}

type SubscriptionConfig struct {
	TrialDays       int           `koanf:"trial_days"`
	PremiumDays     int           `koanf:"premium_days"`
	DefaultPlanType string        `koanf:"default_plan_type"`
	TierCacheTTL    time.Duration `koanf:"tier_cache_ttl"`
}

type EventsConfig struct {
	Enabled           bool          `koanf:"enabled"`
	NatsURL           string        `koanf:"nats_url"`
	SubjectPrefix     string        `koanf:"subject_prefix"`
	ReconnectInterval time.Duration `koanf:"reconnect_interval"`
	MaxReconnects     int           `koanf:"max_reconnects"`
}

// Load builds a Config from defaults, an optional YAML file and environment
// variables, in that order of precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Aurex API",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             8080,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.max_body_bytes":   1 << 20,

		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"database.migrate_on_start":   false,

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,
		"redis.key_prefix":     "aurex",

		"jwt.access_token_expire": "1h",
		"jwt.issuer":              "aurex-identity",
		"jwt.audience":            "aurex-api",
		"jwt.public_key_path":     "keys/public.pem",

		"rate_limit.requests": 2000,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    300,

		"rate_limit.tiers.free.requests":    60,
		"rate_limit.tiers.free.burst":       10,
		"rate_limit.tiers.trial.requests":   300,
		"rate_limit.tiers.trial.burst":      50,
		"rate_limit.tiers.premium.requests": 1200,
		"rate_limit.tiers.premium.burst":    200,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "aurex-api",

		"tenant.default_company_name": "My Business",
		"tenant.default_currency":     "PKR",

		"subscription.trial_days":        7,
		"subscription.premium_days":      30,
		"subscription.default_plan_type": "basic",
		"subscription.tier_cache_ttl":    "30s",

		"events.enabled":            false,
		"events.nats_url":           "nats://localhost:4222",
		"events.subject_prefix":     "aurex",
		"events.reconnect_interval": "2s",
		"events.max_reconnects":     60,
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_URL":                "database.url",
	"DATABASE_MIGRATE_ON_START":   "database.migrate_on_start",
	"REDIS_URL":                   "redis.url",
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"JWT_PRIVATE_KEY_PATH":        "jwt.private_key_path",
	"JWT_PUBLIC_KEY_PATH":         "jwt.public_key_path",
	"JWT_ACCESS_TOKEN_EXPIRE":     "jwt.access_token_expire",
	"JWT_ISSUER":                  "jwt.issuer",
	"JWT_AUDIENCE":                "jwt.audience",
	"RATE_LIMIT_REQUESTS":         "rate_limit.requests",
	"RATE_LIMIT_WINDOW":           "rate_limit.window",
	"RATE_LIMIT_BURST":            "rate_limit.burst",
	"RATE_LIMIT_FREE_REQUESTS":    "rate_limit.tiers.free.requests",
	"RATE_LIMIT_PREMIUM_REQUESTS": "rate_limit.tiers.premium.requests",
	"REDIS_KEY_PREFIX":            "redis.key_prefix",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
	"DEFAULT_COMPANY_NAME":        "tenant.default_company_name",
	"DEFAULT_CURRENCY":            "tenant.default_currency",
	"TRIAL_DAYS":                  "subscription.trial_days",
	"PREMIUM_DAYS":                "subscription.premium_days",
	"EVENTS_ENABLED":              "events.enabled",
	"NATS_URL":                    "events.nats_url",
	"EVENTS_SUBJECT_PREFIX":       "events.subject_prefix",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.JWT.PublicKeyPath == "" {
		return fmt.Errorf("JWT_PUBLIC_KEY_PATH is required")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.App.Environment == "production" {
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	if c.Subscription.TrialDays <= 0 || c.Subscription.PremiumDays <= 0 {
		return fmt.Errorf("subscription periods must be positive")
	}

	if free, ok := c.RateLimit.Tiers["free"]; !ok || free.Requests <= 0 {
		return fmt.Errorf("rate_limit.tiers.free must allow at least one request")
	}
	for name, tier := range c.RateLimit.Tiers {
		if tier.Requests <= 0 {
			return fmt.Errorf("rate_limit.tiers.%s.requests must be positive", name)
		}
	}

	if c.Tenant.DefaultCurrency == "" {
		return fmt.Errorf("tenant.default_currency is required")
	}

	if c.Events.Enabled && c.Events.NatsURL == "" {
		return fmt.Errorf("NATS_URL is required when events are enabled")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
