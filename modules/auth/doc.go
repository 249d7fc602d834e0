// Package auth implements the credential and token lifecycle: bcrypt
// password verification, HMAC-signed access/refresh token pairs with
// single-active-token rotation, the bearer-token identity resolver, and
// the guard middleware protecting the rest of the API.
package auth
