package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")

	// ErrBinderNotApplicable signals that a binder does not apply to the
	// request (for example a JSON body binder on a body-less request) and
	// the next binder should run instead.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
