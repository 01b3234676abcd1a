package store

import "errors"

var (
	// ErrNotFound is returned when an operation requires an existing record and none was found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned by insert-only operations targeting an existing explicit key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnavailable is returned when the underlying storage handle is nil or uninitialized.
	ErrUnavailable = errors.New("store unavailable")
)
