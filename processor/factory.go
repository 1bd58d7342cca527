package processor

import (
	"errors"
	"fmt"
)

// TransformConfig provides configuration options for creating a Transform processor.
type TransformConfig struct {
	// Func is the transformation function to apply to each item.
	// This field is required.
	Func TransformFunc
}

// Validate checks if the TransformConfig is valid.
func (c TransformConfig) Validate() error {
	if c.Func == nil {
		return errors.New("transformation function cannot be nil")
	}
	return nil
}

// NewTransform creates a new Transform processor with the given configuration.
// It validates the configuration and returns an error if invalid.
//
// Example:
//
//	proc, err := processor.NewTransform(processor.TransformConfig{
//		Func: func(data interface{}) (interface{}, error) {
//			// Transform logic here
//			return data, nil
//		},
//	})
//	if err != nil {
//		// handle error
//	}
func NewTransform(config TransformConfig) (*Transform, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transform config: %w", err)
	}

	return &Transform{Func: config.Func}, nil
}

// FilterConfig provides configuration options for creating a Filter processor.
type FilterConfig struct {
	// Predicate is a function that returns true for items that should be kept
	// and false for items that should be dropped.
	// This field is required.
	Predicate FilterFunc

	// InvertMatch inverts the predicate logic: if true, items matching the predicate
	// will be dropped instead of kept.
	// Default is false (keep matching items).
	InvertMatch bool
}

// Validate checks if the FilterConfig is valid.
func (c FilterConfig) Validate() error {
	if c.Predicate == nil {
		return errors.New("predicate function cannot be nil")
	}
	return nil
}

// NewFilter creates a new Filter processor with the given configuration.
// It validates the configuration and returns an error if invalid.
//
// Example:
//
//	proc, err := processor.NewFilter(processor.FilterConfig{
//		Predicate: func(item interface{}) bool {
//			// Return true to keep the item, false to drop it
//			return item != ""
//		},
//	})
//	if err != nil {
//		// handle error
//	}
func NewFilter(config FilterConfig) (*Filter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter config: %w", err)
	}

	return &Filter{
		Predicate:   config.Predicate,
		InvertMatch: config.InvertMatch,
	}, nil
}

// ErrorConfig provides configuration options for creating an Error processor.
type ErrorConfig struct {
	// Err is the error returned for each item.
	// If nil, ErrProcessorFailed is used.
	Err error
}

// NewError creates a new Error processor with the given configuration.
// Unlike other processors, this doesn't require validation as nil error is valid.
//
// Example:
//
//	proc := processor.NewError(processor.ErrorConfig{
//		Err: errors.New("processing failed"),
//	})
func NewError(config ErrorConfig) *Error {
	return &Error{Err: config.Err}
}

// NewNil creates a new Nil processor.
// The Nil processor discards every item.
//
// Example:
//
//	proc := processor.NewNil()
func NewNil() *Nil {
	return &Nil{}
}
