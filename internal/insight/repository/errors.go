package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation is not valid for the
	// record's current lifecycle state, e.g. closing an already-closed
	// journal entry.
	ErrInvalidState = errors.New("invalid state")
)
