package domain

import "errors"

var (
	// ErrNotFound is returned when a record lookup by id or slug resolves to nothing.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record conflict")
)
