// Package apperr defines the error taxonomy shared by services and
// controllers. Services wrap these sentinels with context via fmt.Errorf and
// controllers translate them to HTTP status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrInvalid marks missing or invalid request data (400).
	ErrInvalid = errors.New("invalid argument")
	// ErrNotFound marks an absent entity, or one excluded by an ownership
	// predicate (404).
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a failed credential check (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden marks an authenticated caller acting outside its
	// ownership scope (403).
	ErrForbidden = errors.New("forbidden")
	// ErrConflict marks a duplicate of a must-be-unique record, e.g. a second
	// delivery assignment for the same order (409).
	ErrConflict = errors.New("conflict")
)
