package config_test

import (
	"testing"

	"rusty/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/rusty")

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.AppPort)
	assert.Equal(t, "postgres://localhost/rusty", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, 100, cfg.PageLimit)
}

func TestFromViper_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.FromViper(viper.New())
	assert.ErrorIs(t, err, config.ErrMissingDatabaseURL)
}

func TestFromViper_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:rusty.db")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAGE_LIMIT", "25")

	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.True(t, cfg.AuthEnabled)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 25, cfg.PageLimit)
}

func TestFromViper_Invalid(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/rusty")
	t.Setenv("DATABASE_DRIVER", "mysql")
	_, err := config.FromViper(viper.New())
	assert.Error(t, err)

	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("JWT_SECRET", "")
	_, err = config.FromViper(viper.New())
	assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
}
