// Package config loads typed configuration structs from YAML files, dotenv
// files and environment variables.
//
// It wraps `gopkg.in/yaml.v3`, `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11`. Sources are layered in increasing
// precedence:
//
//  1. `envDefault` struct tags
//  2. the YAML file given with WithFile (matched by `yaml` tags)
//  3. environment variables, optionally prefixed with WithPrefix; dotenv
//     files only fill variables that are not already set
//
// # Usage
//
//	type Config struct {
//	    Rate     int           `env:"RATE" envDefault:"10" yaml:"rate"`
//	    TimeUnit time.Duration `env:"TIME_UNIT" envDefault:"1s" yaml:"time_unit"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg,
//	    config.WithFile("throttle.yaml"),
//	    config.WithPrefix("THROTTLE_"),
//	)
//
// MustLoad panics instead of returning an error, which suits configuration a
// process cannot start without.
//
// # Errors
//
// Failures are reported as ErrNilPointer, ErrReadingFile, ErrParsingFile or
// ErrParsingConfig joined with the underlying cause; check them with errors.Is.
package config
