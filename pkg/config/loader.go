package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	files  []envFile
	prefix string
}

type envFile struct {
	path     string
	optional bool
}

// WithEnvFiles reads variables from the given .env files. Values already
// present in the process environment win over file values, and earlier
// files win over later ones.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		for _, f := range files {
			l.files = append(l.files, envFile{path: f})
		}
	}
}

// WithOptionalEnvFiles is WithEnvFiles that skips files which do not exist.
func WithOptionalEnvFiles(files ...string) Option {
	return func(l *loader) {
		for _, f := range files {
			l.files = append(l.files, envFile{path: f, optional: true})
		}
	}
}

// WithPrefix prepends prefix to every env tag, e.g. "USERCONFIG_".
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// Load parses environment variables into the struct pointed to by v using
// `env` and `envDefault` field tags.
//
// Example:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Policy   string `env:"POLICY" envDefault:"strict"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithOptionalEnvFiles(".env")); err != nil {
//		// Handle error
//	}
//
// The process environment is never modified.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	vars, err := l.environment()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func (l *loader) environment() (map[string]string, error) {
	vars := env.ToMap(os.Environ())

	for _, file := range l.files {
		values, err := godotenv.Read(file.path)
		if err != nil {
			if file.optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrLoadingEnvFile, fmt.Errorf("%s: %w", file.path, err))
		}
		for k, val := range values {
			if _, ok := vars[k]; !ok {
				vars[k] = val
			}
		}
	}

	return vars, nil
}
