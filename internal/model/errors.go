package model

import "errors"

// Sentinel errors shared by the service layer. Handlers map these to
// HTTP status codes with errors.Is.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means the write would violate a uniqueness or
	// lifecycle rule (duplicate username, double completion).
	ErrConflict = errors.New("conflict")
	// ErrValidation means a malformed or missing field.
	ErrValidation = errors.New("validation failed")
)
