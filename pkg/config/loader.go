package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	dotenvFiles []string
}

// WithPrefix scopes every env tag of the struct under the given prefix,
// so `env:"PAGE_SIZE"` with prefix "ADDRESSBOOK_" reads ADDRESSBOOK_PAGE_SIZE.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithDotenv replaces the default ".env" with the given files.
// Files are loaded in order; variables already present in the process
// environment are never overridden.
func WithDotenv(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.dotenvFiles = files
		}
	}
}

// Load populates v from the environment after loading dotenv files.
// Missing dotenv files are ignored, a file that exists but cannot be parsed
// fails the load.
//
// Example:
//
//	type Config struct {
//		Lang     string `env:"LANG" envDefault:"uk"`
//		PageSize int    `env:"PAGE_SIZE" envDefault:"2"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ADDRESSBOOK_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{dotenvFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	for _, file := range o.dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Join(ErrLoadingDotenv, fmt.Errorf("%s: %w", file, err))
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
