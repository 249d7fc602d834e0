// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling, start/stop hooks, and environment-driven configuration.
package httpserver
