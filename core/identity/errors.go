package identity

import (
	"errors"
	"fmt"
)

// ErrDuplicateIdentity is matched by every error reporting a repeated identity.
var ErrDuplicateIdentity = errors.New("duplicate identity")

// DuplicateError describes the first repeated identity found in a sequence.
type DuplicateError struct {
	// Identity is the repeated value.
	Identity any
	// First is the index of the first occurrence.
	First int
	// Index is the index of the offending occurrence.
	Index int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate identity %v at index %d (first seen at index %d)", e.Identity, e.Index, e.First)
}

// Unwrap allows errors.Is(err, ErrDuplicateIdentity).
func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateIdentity
}
