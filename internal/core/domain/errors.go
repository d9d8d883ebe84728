package domain

import "errors"

// Ownership mismatches are reported as ErrNotFound so existence never
// leaks across users.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
)
