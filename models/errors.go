package models

import "errors"

// Error kinds shared by repositories and services. Controllers translate
// them to HTTP status codes: ErrValidation 400, ErrNotFound 404, ErrConflict 409.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
