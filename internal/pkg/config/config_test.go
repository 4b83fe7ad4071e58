//go:build unit

package config_test

import (
	"net/url"
	"os"
	"testing"
	"time"

	"agendamento-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("database url takes precedence over parts", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/agenda?sslmode=disable")
		t.Setenv("DB_USER", "ignored")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, "postgres://u:p@db:5432/agenda?sslmode=disable", cfg.DB.BuildDSN())
		assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, int32(10), cfg.DB.MaxConns)
		assert.True(t, cfg.DB.AutoMigrate)
	})

	t.Run("dsn built from parts", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "agenda")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "agenda_db")
		t.Setenv("DB_HOST", "pg")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t,
			"postgres://agenda:secret@pg:5432/agenda_db?sslmode=disable&timezone=America%2FSao_Paulo",
			cfg.DB.BuildDSN())
	})

	t.Run("credentials with reserved characters survive parsing", func(t *testing.T) {
		db := config.DBConfig{
			User:     "agenda",
			Password: "p@ss:w/rd?#",
			Host:     "pg",
			Port:     "5432",
			DBName:   "agenda_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		}

		parsed, err := url.Parse(db.BuildDSN())
		require.NoError(t, err)

		password, ok := parsed.User.Password()
		require.True(t, ok)
		assert.Equal(t, "p@ss:w/rd?#", password)
		assert.Equal(t, "agenda", parsed.User.Username())
		assert.Equal(t, "pg:5432", parsed.Host)
		assert.Equal(t, "/agenda_db", parsed.Path)
		assert.Equal(t, "America/Sao_Paulo", parsed.Query().Get("timezone"))
	})

	t.Run("missing database settings", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")

		_, err := config.LoadConfig()
		require.ErrorIs(t, err, config.ErrMissingDatabaseConfig)
	})

	t.Run("missing port", func(t *testing.T) {
		t.Setenv("PORT", "unused")
		require.NoError(t, os.Unsetenv("PORT"))
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/agenda")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
