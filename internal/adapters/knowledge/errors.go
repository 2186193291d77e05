package knowledge

import "errors"

// Sentinel kinds for knowledge store errors.
var (
	// ErrUnavailable marks a knowledge file that could not be read or
	// decoded; the similarity pipeline cannot run without it.
	ErrUnavailable = errors.New("knowledge store unavailable")
)
