package models

import "errors"

// Error kinds shared by repositories, services and handlers.
// Detail is attached with fmt.Errorf("%w: ...") so callers match with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")
)
