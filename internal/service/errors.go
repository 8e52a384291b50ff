package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail  = errors.New("an account with this email already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrNotLoggedIn     = errors.New("not logged in")
)

// ValidationError reports a missing or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps a persistence failure. Reads degrade to the
// caller's default; writes surface the error to the command boundary.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
