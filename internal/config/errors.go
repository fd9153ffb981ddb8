package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidConfig covers values that fail validation, like a
	// snipeit_url without a scheme.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig covers file and env provider failures.
	ErrLoadConfig = errors.New("load config failed")
)
