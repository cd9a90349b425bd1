package apperr

import "errors"

// Domain errors. Services return these (possibly wrapped); the HTTP
// error handler maps them to status codes and user-facing messages.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredential  = errors.New("invalid credential")
	ErrAlreadyExists      = errors.New("already exists")
	ErrTrialExpired       = errors.New("trial expired")
	ErrGatewayUnavailable = errors.New("ai gateway unavailable")
	ErrValidation         = errors.New("validation failed")
)
