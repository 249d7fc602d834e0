// Package binder parses HTTP requests into typed structs. Binders compose:
// apply JSON, Query, and Path binders in sequence and each fills only the
// fields it owns. A binder that does not apply to the request returns
// ErrBinderNotApplicable so the chain can continue.
package binder
