package adapter

import "errors"

var (
	// ErrInvalidRegistry is returned when an operations file names an
	// unknown operation, an unsupported method or a malformed path.
	ErrInvalidRegistry = errors.New("invalid operations registry")

	// ErrMissingPathParam is returned when a path template refers to a
	// placeholder that the caller did not supply.
	ErrMissingPathParam = errors.New("missing path parameter")
)
