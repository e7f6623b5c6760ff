package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrConfigInvalid     = errors.New("configuration is invalid")
	ErrInvalidOutputType = errors.New("output must be one of table, json or yaml")
)

// Argument errors.
var (
	ErrInvalidSequential    = errors.New("sequential id must be a positive integer")
	ErrInvalidReferenceType = errors.New("reference type must be a single letter")
	ErrInvalidLimit         = errors.New("limit must be a positive integer")
	ErrInvalidInterval      = errors.New("interval must be positive")
	ErrInvalidEncoding      = errors.New("encoding must be json or gtfsrt")
)
