package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrEventLocked           = errors.New("event is locked")
	ErrPreconditionNotMet    = errors.New("precondition not met")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
