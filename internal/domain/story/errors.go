package story

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNotFound marks a (race, full name) pair absent from the store,
	// e.g. a driver who did not start that race. It is an expected
	// outcome, not a fault.
	ErrNotFound = errors.New("driver not found in race")
)
