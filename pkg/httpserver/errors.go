package httpserver

import "errors"

var (
	ErrStart    = errors.New("httpserver: server failed to start")
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
