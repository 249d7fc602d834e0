// Package logger builds configured slog.Logger instances.
//
// A logger is created through New with functional options controlling level,
// format, static attributes, and context extractors that inject request-scoped
// values (such as request IDs) into every record.
package logger
