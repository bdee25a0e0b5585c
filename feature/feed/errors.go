package feed

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidName is returned for feed names outside [a-z0-9_-]{1,64}.
	ErrInvalidName = errors.New("invalid feed name")
	// ErrSnapshotNotFound is returned when a feed has no snapshot in storage.
	ErrSnapshotNotFound = errors.New("feed snapshot not found")
)

var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that name is a usable feed name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
