package services

import "errors"

// Service errors the controllers translate into HTTP statuses. Anything
// not matching these is a storage failure and surfaces as a 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)
