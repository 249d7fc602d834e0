package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrAccountNotFound    = errors.New("account not found")
)
