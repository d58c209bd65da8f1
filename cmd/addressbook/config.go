package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/addressbook/pkg/config"
	"github.com/dmitrymomot/addressbook/pkg/logger"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	AppEnv    string     `env:"APP_ENV" envDefault:"development"`
	LogLevel  string     `env:"LOG_LEVEL"`
	LogFormat string     `env:"LOG_FORMAT"`
	Book      BookConfig `envPrefix:"ADDRESSBOOK_"`
}

type BookConfig struct {
	Lang     string `env:"LANG" envDefault:"uk"`
	PageSize int    `env:"PAGE_SIZE" envDefault:"2"`
}

func loadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if cfg.Book.PageSize < 1 {
		return Config{}, fmt.Errorf("ADDRESSBOOK_PAGE_SIZE must be positive, got %d", cfg.Book.PageSize)
	}
	return cfg, nil
}

// newLogger builds the process logger. LOG_LEVEL and LOG_FORMAT override
// the APP_ENV defaults when set.
func newLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, "addressbook"),
		logger.WithOutput(os.Stderr),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}
