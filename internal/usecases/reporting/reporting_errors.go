package reporting

import "errors"

// Errors for the reporting context. Order-store failures are not wrapped
// into new kinds here; they propagate unchanged from the repository.
var (
	// ErrInvalidRange covers an inverted range or one over the ceiling.
	// The HTTP boundary rejects these before the service runs; the check
	// here guards direct callers.
	ErrInvalidRange = errors.New("invalid date range")
)
