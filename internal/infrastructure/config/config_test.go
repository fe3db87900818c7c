package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"POLLITO_APP_NAME":               os.Getenv("POLLITO_APP_NAME"),
		"POLLITO_APP_ENV":                os.Getenv("POLLITO_APP_ENV"),
		"POLLITO_APP_PORT":               os.Getenv("POLLITO_APP_PORT"),
		"POLLITO_DATABASE_DRIVER":        os.Getenv("POLLITO_DATABASE_DRIVER"),
		"POLLITO_DATABASE_HOST":          os.Getenv("POLLITO_DATABASE_HOST"),
		"POLLITO_DATABASE_PORT":          os.Getenv("POLLITO_DATABASE_PORT"),
		"POLLITO_DATABASE_USER":          os.Getenv("POLLITO_DATABASE_USER"),
		"POLLITO_DATABASE_PASSWORD":      os.Getenv("POLLITO_DATABASE_PASSWORD"),
		"POLLITO_DATABASE_DBNAME":        os.Getenv("POLLITO_DATABASE_DBNAME"),
		"POLLITO_DATABASE_SSLMODE":       os.Getenv("POLLITO_DATABASE_SSLMODE"),
		"POLLITO_DATABASE_LOCK_TIMEOUT":  os.Getenv("POLLITO_DATABASE_LOCK_TIMEOUT"),
		"POLLITO_BUSINESS_CASH_PER_UNIT": os.Getenv("POLLITO_BUSINESS_CASH_PER_UNIT"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "operacion-pollito", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "pollito", cfg.Database.DBName)
		assert.Equal(t, 60*time.Second, cfg.Database.LockTimeout)
		assert.True(t, cfg.Business.CashPerUnit.Equal(decimal.NewFromFloat(6.50)))
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("env vars override defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("POLLITO_APP_PORT", "8081")
		os.Setenv("POLLITO_DATABASE_HOST", "db.internal")
		os.Setenv("POLLITO_DATABASE_LOCK_TIMEOUT", "10s")
		os.Setenv("POLLITO_BUSINESS_CASH_PER_UNIT", "7.25")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 10*time.Second, cfg.Database.LockTimeout)
		assert.True(t, cfg.Business.CashPerUnit.Equal(decimal.NewFromFloat(7.25)))
	})

	t.Run("rejects invalid cash_per_unit", func(t *testing.T) {
		clearEnv()
		os.Setenv("POLLITO_BUSINESS_CASH_PER_UNIT", "-1.00")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cash_per_unit")
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnv()
		os.Setenv("POLLITO_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("POLLITO_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word",
		DBName:   "pollito",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword")
	assert.Contains(t, dsn, "sslmode=disable")
}
