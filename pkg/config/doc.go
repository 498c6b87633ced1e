// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// Load reads an optional `.env` file once per process, parses the
// environment into a struct annotated with `env` tags and caches the result
// per type, so every component asking for the same configuration type gets
// the same values.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"DOCMODEL_LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"DOCMODEL_LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// LoadEnv loads additional .env files before the first Load. Reload and
// ResetCache drop cached values, which is mostly useful in tests.
//
// # Error Handling
//
// Parse failures, including missing `required` variables, are returned
// joined with ErrParsingConfig. MustLoad and MustLoadEnv panic instead.
package config
