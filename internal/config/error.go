package config

import (
	"errors"
	"fmt"
)

var errNegative = errors.New("must not be negative")

// ConfigInitError means the config is missing something the app cannot run
// without.
type ConfigInitError struct {
	msg string
}

func (e *ConfigInitError) Error() string {
	return e.msg
}

// ValidationError describes a setting with an unusable value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
