// Package handler provides a type-safe HTTP handler framework built on
// generics. Handlers receive a typed request value produced by binders and
// return a Response that knows how to render itself.
//
// All JSON responses share one envelope:
//
//	{"statusCode": 200, "message": "...", "data": {...}}
//
// Errors are rendered through the same shape with an error field instead of
// data. See JSON, JSONError, and Wrap for the main entry points.
package handler
