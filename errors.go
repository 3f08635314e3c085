package goMetrics

import "errors"

var (
	// ErrBuilderReused is returned by Build when the builder has already produced a registry.
	ErrBuilderReused = errors.New("builder already used")
	// ErrEventLogBounds is returned by Build for non-positive or inverted event log watermarks.
	ErrEventLogBounds = errors.New("event log watermarks must be positive and low must not exceed high")
	// ErrBucketOrder is returned by Build when default histogram buckets are not strictly ascending.
	ErrBucketOrder = errors.New("default buckets must be strictly ascending")
	// ErrInvalidValidationMode is returned by Build for an unknown ValidationMode.
	ErrInvalidValidationMode = errors.New("invalid ValidationMode")
)
