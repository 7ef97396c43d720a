// Package config loads application configuration from environment
// variables into tagged structs.
//
// It wraps `github.com/caarlos0/env/v11` for parsing and
// `github.com/joho/godotenv` for reading `.env` files. Unlike godotenv.Load,
// file values are merged into a private copy of the environment handed to the
// parser, so loading configuration never mutates the process environment.
//
// # Usage
//
//	type Config struct {
//	    LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
//	    MaxInputSize int    `env:"MAX_INPUT_SIZE" envDefault:"1048576"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg,
//	    config.WithOptionalEnvFiles(".env"),
//	    config.WithPrefix("USERCONFIG_"),
//	); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// Precedence, highest first: process environment, then env files in the
// order given, then `envDefault` tags.
//
// # Error Handling
//
// Errors wrap one of the sentinels so they can be tested with errors.Is:
//
//   - ErrParsingConfig  – a value could not be parsed or a required one is missing.
//   - ErrLoadingEnvFile – an env file could not be read.
//   - ErrNilPointer     – nil pointer passed to Load/MustLoad.
package config
