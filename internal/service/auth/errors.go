package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRole           = errors.New("invalid role")
	ErrRoleNotAllowed        = errors.New("role cannot be self-assigned")
	ErrAccessDenied          = errors.New("access denied")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrUserNotFound          = errors.New("user not found")
)
