package services

import "errors"

// Shared service-level errors, mapped to HTTP statuses by the handlers.
var (
	ErrNotFound             = errors.New("requested resource not found")
	ErrCompetitionNotFound  = errors.New("competition not found")
	ErrBackendUnavailable   = errors.New("tournament backend unavailable")
	ErrValidationFailed     = errors.New("validation failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
