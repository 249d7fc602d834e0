package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hirehub/jobboard/pkg/binder"
	"github.com/hirehub/jobboard/pkg/requestid"
	"github.com/hirehub/jobboard/pkg/validator"
)

// errorBody is the envelope variant written for failed requests.
type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      any    `json:"error,omitempty"`
}

// JSONErrorOption configures a JSONError response.
type JSONErrorOption func(*jsonErrorResponse)

// WithErrorMessage overrides the message derived from the error.
func WithErrorMessage(message string) JSONErrorOption {
	return func(r *jsonErrorResponse) {
		r.message = message
	}
}

type jsonErrorResponse struct {
	err     error
	message string
}

// JSONError creates a response that maps an error to the envelope shape.
// HTTPError values keep their status code, validation errors become 422
// with per-field details, bind failures become 400, everything else is
// a 500.
func JSONError(err error, opts ...JSONErrorOption) Response {
	resp := &jsonErrorResponse{err: err}
	for _, opt := range opts {
		opt(resp)
	}
	return resp
}

func (j *jsonErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	status, body := classifyError(j.err)
	if j.message != "" {
		body.Message = j.message
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// classifyError maps an error to an HTTP status and the envelope to write.
func classifyError(err error) (int, errorBody) {
	if verrs := validator.ExtractValidationErrors(err); !verrs.IsEmpty() {
		details := make(map[string][]string, len(verrs.Fields()))
		for _, field := range verrs.Fields() {
			details[field] = verrs.Get(field)
		}
		return http.StatusUnprocessableEntity, errorBody{
			StatusCode: http.StatusUnprocessableEntity,
			Message:    "validation failed",
			Error:      details,
		}
	}

	if isBindError(err) {
		return http.StatusBadRequest, errorBody{
			StatusCode: http.StatusBadRequest,
			Message:    ErrBadRequest.Key,
			Error:      err.Error(),
		}
	}

	var httpErr HTTPError
	if ok := asHTTPError(err, &httpErr); ok {
		return httpErr.Code, errorBody{
			StatusCode: httpErr.Code,
			Message:    httpErr.Key,
		}
	}

	// Never leak internal error details to clients.
	return http.StatusInternalServerError, errorBody{
		StatusCode: http.StatusInternalServerError,
		Message:    ErrInternalServerError.Key,
	}
}

// isBindError reports whether the error came from request binding, i.e.
// the client sent a body, query, or path value that could not be parsed.
// Those are client faults, never server ones.
func isBindError(err error) bool {
	return errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) ||
		errors.Is(err, binder.ErrInvalidQuery) ||
		errors.Is(err, binder.ErrInvalidPath)
}

func asHTTPError(err error, target *HTTPError) bool {
	for err != nil {
		if he, ok := err.(HTTPError); ok {
			*target = he
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// NewErrorHandler returns an ErrorHandler that logs the failure and renders
// it through JSONError. Server-side errors log at error level, client errors
// at warn.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	return func(ctx C, err error) {
		status, _ := classifyError(err)

		attrs := []any{
			slog.Int("status", status),
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Request().URL.Path),
			slog.Any("error", err),
		}
		if rid := requestid.FromContext(ctx); rid != "" {
			attrs = append(attrs, slog.String("request_id", rid))
		}

		if status >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "request failed", attrs...)
		} else {
			log.WarnContext(ctx, "request rejected", attrs...)
		}

		_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
	}
}
