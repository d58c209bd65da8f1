package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/addressbook/pkg/config"
	"github.com/dmitrymomot/addressbook/pkg/logger"
)

func noDotenv(t *testing.T) config.Option {
	t.Helper()
	return config.WithDotenv(filepath.Join(t.TempDir(), "absent.env"))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(noDotenv(t))
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "uk", cfg.Book.Lang)
		assert.Equal(t, 2, cfg.Book.PageSize)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADDRESSBOOK_LANG", "en")
		t.Setenv("ADDRESSBOOK_PAGE_SIZE", "5")

		cfg, err := loadConfig(noDotenv(t))
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, "en", cfg.Book.Lang)
		assert.Equal(t, 5, cfg.Book.PageSize)
	})

	t.Run("non-positive page size", func(t *testing.T) {
		t.Setenv("ADDRESSBOOK_PAGE_SIZE", "0")
		_, err := loadConfig(noDotenv(t))
		require.Error(t, err)
	})

	t.Run("malformed page size", func(t *testing.T) {
		t.Setenv("ADDRESSBOOK_PAGE_SIZE", "two")
		_, err := loadConfig(noDotenv(t))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("environment defaults", func(t *testing.T) {
		log, err := newLogger(Config{AppEnv: "production"})
		require.NoError(t, err)
		assert.False(t, log.Enabled(t.Context(), slog.LevelDebug))
	})

	t.Run("level override", func(t *testing.T) {
		log, err := newLogger(Config{AppEnv: "development", LogLevel: "error"})
		require.NoError(t, err)
		assert.False(t, log.Enabled(t.Context(), slog.LevelWarn))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := newLogger(Config{LogLevel: "loud"})
		require.ErrorIs(t, err, logger.ErrUnknownLevel)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := newLogger(Config{LogFormat: "xml"})
		require.ErrorIs(t, err, logger.ErrUnknownFormat)
	})
}
