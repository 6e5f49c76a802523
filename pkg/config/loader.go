package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files    []string
	optional bool
	vars     map[string]string
	prefix   string
}

// WithEnvFiles reads the given .env files into the process environment
// before parsing. Variables already set are not overridden. A missing file is
// an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithOptionalEnvFile reads .env from the working directory when present.
func WithOptionalEnvFile() Option {
	return func(o *options) {
		o.optional = true
	}
}

// WithVars parses from vars instead of the process environment.
func WithVars(vars map[string]string) Option {
	return func(o *options) {
		o.vars = vars
	}
}

// WithPrefix prepends prefix to every env key.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load parses the environment into a new T using its env struct tags.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8000"`
//	}
//	cfg, err := config.Load[Config](config.WithOptionalEnvFile())
func Load[T any](opts ...Option) (T, error) {
	var cfg T
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.optional {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: .env: %w", ErrLoadingEnvFile, err)
		}
	}
	if len(o.files) > 0 {
		if err := godotenv.Load(o.files...); err != nil {
			return cfg, fmt.Errorf("%w: %w", ErrLoadingEnvFile, err)
		}
	}

	envOpts := env.Options{Prefix: o.prefix}
	if o.vars != nil {
		envOpts.Environment = o.vars
	}
	if err := env.ParseWithOptions(&cfg, envOpts); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure, for use in main.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
