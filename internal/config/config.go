package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrMissingDatabaseURL is returned when DATABASE_URL is not set.
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	// ErrMissingJWTSecret is returned when authorization is enabled without a secret.
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required when AUTH_ENABLED is true")
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	AppPort        string
	DatabaseURL    string
	DatabaseDriver string // "postgres" or "sqlite"
	RabbitMQURL    string // empty disables event publishing
	JWTSecret      string
	AuthEnabled    bool
	LogLevel       string
	PageLimit      int
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper builds a Config from v with defaults and environment binding applied.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PAGE_LIMIT", 100)
	// DATABASE_URL has no default but still has to be known for AutomaticEnv lookups.
	_ = v.BindEnv("DATABASE_URL")
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		AuthEnabled:    v.GetBool("AUTH_ENABLED"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		PageLimit:      v.GetInt("PAGE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.DatabaseDriver != "postgres" && cfg.DatabaseDriver != "sqlite" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 100
	}
	return cfg, nil
}
