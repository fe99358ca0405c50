package hdpath

import "errors"

var (
	// ErrInvalidPath is returned for any grammar violation: missing "m"
	// prefix, empty segments, or non-digit characters.
	ErrInvalidPath = errors.New("hdpath: invalid path")
	// ErrIntegerOverflow is returned when a step's index is >= 2^31.
	ErrIntegerOverflow = errors.New("hdpath: index out of range")
)
