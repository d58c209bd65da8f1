// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// dotenv files are loaded first (by default `.env` in the working directory,
// silently skipped when absent), then the process environment is parsed into
// the struct according to its `env` and `envDefault` tags.
//
// # Usage
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithDotenv(".env", ".env.local"))
//
// # Error Handling
//
// Parse failures wrap ErrParsingConfig, unreadable dotenv files wrap
// ErrLoadingDotenv; both are detectable with errors.Is.
package config
