package domain

import "errors"

// Sentinel errors shared across services, repositories, and the HTTP layer.
// Unknown-user and wrong-password both surface as ErrInvalidCredentials so
// callers cannot enumerate accounts through error messages.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidRole        = errors.New("invalid role")
)
