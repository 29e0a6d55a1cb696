package domain

import "errors"

// Error taxonomy shared across usecases and adapters. Callers classify
// failures with errors.Is; the HTTP layer maps each sentinel to a status.
var (
	// ErrUnauthorized means a permission check failed.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means a record or token is absent or already consumed.
	ErrNotFound = errors.New("not found")
	// ErrExpired means an invitation is past its expiry.
	ErrExpired = errors.New("invitation expired")
	// ErrDuplicateInvitation means a live invitation already exists for the
	// email in this workspace.
	ErrDuplicateInvitation = errors.New("duplicate invitation")
	// ErrInvalidCredentials means sign-in or step-up re-authentication
	// failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken means sign-up hit an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrValidation means input failed a policy or required-field check.
	ErrValidation = errors.New("validation failed")
)
