package processor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProcessors is wrapped by the ConfigurationError returned when a
	// Composite has no processors.
	ErrNoProcessors = errors.New("at least one processor is required")

	// ErrNilProcessor is wrapped by the ConfigurationError returned when a
	// Composite contains a nil processor.
	ErrNilProcessor = errors.New("processor cannot be nil")

	// ErrProcessorFailed is the default error used by Error.
	ErrProcessorFailed = errors.New("processor failed")
)

// ConfigurationError is returned when a processor is set up incorrectly.
// A processor that fails validation must not be used.
type ConfigurationError struct {
	// Field names the offending setting, e.g. "Processors".
	Field string

	// Index is the position of the offending element, or -1.
	Index int

	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("configuration error: %s[%d]: %v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned by typed steps when a value of the wrong
// type reaches them.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}
