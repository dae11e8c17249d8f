package lookup

import "errors"

// Sentinel errors for package lookup.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Name errors
	ErrNotUTF8 = errors.New("not valid UTF-8")

	// Archive errors
	ErrDepthExceeded = errors.New("maximum archive nesting depth exceeded")

	// Option errors
	ErrNegativeDepth = errors.New("max depth must not be negative")
)
