package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes the variables read by Load. Nested keys use a double underscore,
// e.g. WINNERS_DATABASE__HOST maps to database.host.
const envPrefix = "WINNERS_"

// Page sources accepted in Config.PageSource.
const (
	PageSourceRaw        = "raw"
	PageSourceRepository = "repository"
	PageSourceLenient    = "lenient"
)

// Database drivers accepted in DatabaseConfig.Driver.
const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `koanf:"-"`
	Port        string `koanf:"port" validate:"required,numeric"`
	// PageSource selects how the winners page is fetched: raw result set,
	// strict repository, or the lenient repository that degrades failures to an empty page.
	PageSource string `koanf:"page_source" validate:"oneof=raw repository lenient"`
	// StrictPageParam rejects a malformed page parameter with 400 instead of falling back to page 1.
	StrictPageParam bool `koanf:"strict_page_param"`
	// CORSAllowedOrigins is a comma-separated origin list; empty disables CORS headers.
	CORSAllowedOrigins string         `koanf:"cors_allowed_origins"`
	Log                LogConfig      `koanf:"log"`
	Database           DatabaseConfig `koanf:"database"`
}

// AllowedOrigins splits CORSAllowedOrigins into individual origins.
func (c *Config) AllowedOrigins() []string {
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		return nil
	}
	return strings.Split(c.CORSAllowedOrigins, ",")
}

// LogConfig controls the zerolog level.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`
}

// DatabaseConfig carries the winners database connection parameters.
type DatabaseConfig struct {
	Driver   string `koanf:"driver" validate:"oneof=postgres pgx"`
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"min=1,max=65535"`
	Name     string `koanf:"name" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	// .env is optional; production relies on the process environment
	if environment != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Environment = environment
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.PageSource == "" {
		c.PageSource = PageSourceRaw
	}
	if c.Log.Level == "" {
		if c.Environment == "production" {
			c.Log.Level = "info"
		} else {
			c.Log.Level = "debug"
		}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPQ
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}
