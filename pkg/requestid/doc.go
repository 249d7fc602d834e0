// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers: middleware that attaches an ID to every request,
// context accessors, and a logger extractor for structured logging.
package requestid
