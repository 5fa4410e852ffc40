package gamemath

import "errors"

var (
	// ErrInvalidState marks a broken physical or generation model. It is fatal.
	ErrInvalidState = errors.New("invalid state")

	// ErrPreconditionViolation marks an input outside the range an operation is defined for.
	ErrPreconditionViolation = errors.New("precondition violation")
)
