package jwt

import "errors"

var (
	ErrInvalidToken            = errors.New("jwt: malformed or not yet valid token")
	ErrExpiredToken            = errors.New("jwt: token has expired")
	ErrMissingSigningKey       = errors.New("jwt: signing key is required")
	ErrMissingClaims           = errors.New("jwt: claims are required")
	ErrInvalidSignature        = errors.New("jwt: signature verification failed")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
