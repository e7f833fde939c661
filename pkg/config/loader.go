package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// noDefaultTag is a struct tag no field carries.
const noDefaultTag = "envNoDefault"

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	file     string
	envFiles []string
	prefix   string
}

// WithFile reads a YAML document into the target before the environment is
// applied. Fields are matched by their `yaml` tags.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithEnvFiles loads the given dotenv files instead of the default ".env".
// Unlike the default file, an explicitly listed file must exist.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithPrefix prepends prefix to every `env` tag name, so the same struct can
// be loaded for several instances (e.g. "CRAWLER_" and "MAILER_").
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load populates v from, in increasing precedence: `envDefault` tags, the
// optional YAML file, and environment variables (including dotenv files).
// Variables already present in the process environment are never overridden
// by dotenv files.
//
// Example:
//
//	type Config struct {
//		Rate     int           `env:"RATE" envDefault:"10" yaml:"rate"`
//		TimeUnit time.Duration `env:"TIME_UNIT" envDefault:"1s" yaml:"time_unit"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("THROTTLE_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrReadingFile, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
	}

	// Defaults and the environment first, so fields absent from the file
	// still get their envDefault.
	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if o.file == "" {
		return nil
	}

	data, err := os.ReadFile(o.file)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingFile, fmt.Errorf("%s: %w", o.file, err))
	}

	// Re-apply only the variables that are actually set. Without a default
	// tag, unset variables leave the file values in place.
	if err := env.ParseWithOptions(v, env.Options{
		Prefix:              o.prefix,
		DefaultValueTagName: noDefaultTag,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
