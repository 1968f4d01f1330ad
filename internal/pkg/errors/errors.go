package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups for entity ids that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks uniqueness violations and stale versioned writes.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument marks malformed or missing input.
	ErrInvalidArgument = errors.New("invalid argument")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
