package domain

import "errors"

var (
	// ErrInvalidInput is returned when a link cannot be created from the given URL.
	ErrInvalidInput = errors.New("invalid or missing URL")

	// ErrNotFound is returned when a code is not present in the registry.
	ErrNotFound = errors.New("not found")
)
