// Package users implements the account resource: CRUD with audit stamping
// and soft deletes, the auth store adapter, and the opt-in default-account
// seed.
package users
