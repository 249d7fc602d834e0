package handler

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform response body shape. Successful responses carry
// data, failed ones carry error details; statusCode always mirrors the HTTP
// status so clients behind buffering proxies can still read it.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      any    `json:"error,omitempty"`
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithStatus sets the HTTP status code. Defaults to 200 OK.
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithMessage sets the human-readable message of the response envelope.
func WithMessage(message string) JSONOption {
	return func(r *jsonResponse) {
		r.message = message
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		r.headers.Add(key, value)
	}
}

// WithCookie adds a Set-Cookie header to the response.
func WithCookie(c *http.Cookie) JSONOption {
	return func(r *jsonResponse) {
		r.cookies = append(r.cookies, c)
	}
}

type jsonResponse struct {
	status  int
	message string
	data    any
	headers http.Header
	cookies []*http.Cookie
}

// JSON creates a response that wraps data in the standard envelope.
//
//	return handler.JSON(jobs, handler.WithMessage("Get jobs with pagination"))
func JSON(data any, opts ...JSONOption) Response {
	resp := &jsonResponse{
		status:  http.StatusOK,
		data:    data,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(resp)
	}
	return resp
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range j.headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	for _, c := range j.cookies {
		http.SetCookie(w, c)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)

	return json.NewEncoder(w).Encode(envelope{
		StatusCode: j.status,
		Message:    j.message,
		Data:       j.data,
	})
}
