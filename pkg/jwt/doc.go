// Package jwt implements minimal JWT generation and validation using
// HMAC-SHA256, with constant-time signature verification and temporal claim
// checks. Claims are arbitrary JSON-serializable structures; embed
// StandardClaims to get expiry validation for free.
package jwt
