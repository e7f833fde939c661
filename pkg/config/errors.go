package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingFile is returned when a configuration or dotenv file cannot be read
	ErrReadingFile = errors.New("failed to read configuration file")

	// ErrParsingFile is returned when the YAML configuration file is malformed
	ErrParsingFile = errors.New("failed to parse configuration file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
