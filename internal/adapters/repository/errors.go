package repository

import "errors"

// Sentinel kinds for relational store errors.
var (
	// ErrNotFound marks a lookup by an unknown key.
	ErrNotFound = errors.New("row not found")
	// ErrUnavailable marks a store that could not be loaded at all; no
	// computation is possible without it and callers must fail hard.
	ErrUnavailable = errors.New("relational store unavailable")
)
