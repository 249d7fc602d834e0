// Package sanitizer normalizes user-provided input before validation and
// persistence. Sanitizers never reject values; they only clean them.
package sanitizer
