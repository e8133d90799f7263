package usecase

import "errors"

// Handlers classify service errors with errors.Is against these; messages
// carrying request input are never inspected.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
)
