package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	DB        DBConfig
	Redis     RedisConfig
	Generator GeneratorConfig
	CORS      CORSConfig
}

// database configuration; the DSN is optional because the service can run
// on the in-memory session store
type DBConfig struct {
	DSN          string        `envconfig:"DATABASE_URL"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleTime  time.Duration `envconfig:"DB_MAX_IDLE_TIME" default:"15m"`
}

// redis cache configuration, best-effort only
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	ModelTTL time.Duration `envconfig:"REDIS_MODEL_TTL" default:"10m"`
}

// remote question/analysis generator configuration
type GeneratorConfig struct {
	BaseURL           string        `envconfig:"GENERATOR_BASE_URL" default:"http://localhost:5000/api"`
	APIKey            string        `envconfig:"GENERATOR_API_KEY"`
	Model             string        `envconfig:"GENERATOR_MODEL" default:"llama3-8b-8192"`
	Timeout           time.Duration `envconfig:"GENERATOR_TIMEOUT" default:"30s"`
	RetryDelay        time.Duration `envconfig:"GENERATOR_RETRY_DELAY" default:"2s"`
	RateLimitCooldown time.Duration `envconfig:"GENERATOR_RATE_LIMIT_COOLDOWN" default:"1h"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.DSN != "" && c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be at least 1")
	}
	if c.Generator.BaseURL == "" {
		return fmt.Errorf("GENERATOR_BASE_URL must not be empty")
	}
	if c.Generator.Timeout <= 0 {
		return fmt.Errorf("GENERATOR_TIMEOUT must be positive")
	}
	if c.Generator.RateLimitCooldown <= 0 {
		return fmt.Errorf("GENERATOR_RATE_LIMIT_COOLDOWN must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB=%t, Redis=%t, Generator.BaseURL=%s, Generator.Model=%s, Generator.Timeout=%s}",
		c.Env, c.Port, c.DB.DSN != "", c.Redis.Addr != "",
		c.Generator.BaseURL, c.Generator.Model, c.Generator.Timeout)
}
