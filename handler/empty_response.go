package handler

import "net/http"

type emptyResponse struct {
	status int
}

// Empty returns a response with 204 No Content status.
func Empty() Response {
	return &emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus returns an empty response with a custom status code.
func EmptyWithStatus(status int) Response {
	return &emptyResponse{status: status}
}

func (e *emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}
