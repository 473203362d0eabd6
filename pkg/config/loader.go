package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when no env files are given. A missing default file
// is not an error.
const DefaultEnvFile = ".env"

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithPrefix prepends prefix to every env tag, e.g. "FORMDEMO_".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads the given .env files instead of DefaultEnvFile.
// Every listed file must exist; earlier files win over later ones.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = paths
	}
}

// WithEnvironment replaces the process environment as the source of values.
func WithEnvironment(environment map[string]string) Option {
	return func(o *options) {
		o.environment = environment
	}
}

// Load parses environment variables into v based on its `env` field tags.
//
// Values from .env files fill only variables the environment does not set,
// so the process environment always takes precedence:
//
//	type ServerConfig struct {
//		Addr     string `env:"ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("FORMDEMO_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environment, err := o.resolve()
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// resolve merges .env file values under the base environment.
func (o *options) resolve() (map[string]string, error) {
	base := o.environment
	if base == nil {
		base = environ()
	}

	fileValues, err := readEnvFiles(o.files)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(base)+len(fileValues))
	maps.Copy(merged, fileValues)
	maps.Copy(merged, base)
	return merged, nil
}

func readEnvFiles(paths []string) (map[string]string, error) {
	if len(paths) == 0 {
		values, err := godotenv.Read(DefaultEnvFile)
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		return values, nil
	}

	values := make(map[string]string)
	// Read in reverse so earlier files overwrite later ones.
	for i := len(paths) - 1; i >= 0; i-- {
		fileValues, err := godotenv.Read(paths[i])
		if err != nil {
			return nil, errors.Join(ErrReadingEnvFile, err)
		}
		maps.Copy(values, fileValues)
	}
	return values, nil
}

func environ() map[string]string {
	vars := os.Environ()
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
