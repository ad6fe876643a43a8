package config

import "errors"

// Configuration validation errors
var (
	ErrInvalidQuantum        = errors.New("invalid default quantum")
	ErrInvalidQueueWarnDepth = errors.New("invalid queue warn depth")
	ErrInvalidActorWarnCount = errors.New("invalid actor warn count")
	ErrInvalidLogLevel       = errors.New("invalid log level")
	ErrInvalidLogFormat      = errors.New("invalid log format")
)

// Configuration loading errors
var (
	ErrConfigFileNotFound = errors.New("configuration file not found")
	ErrUnsupportedFormat  = errors.New("unsupported config file format")
)
