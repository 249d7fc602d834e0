// Package validator provides composable, rule-based input validation.
//
// Rules are plain values built by constructor functions (RequiredString,
// ValidEmail, StrongPassword, ...) and executed together with Apply, which
// collects every failure into a ValidationErrors value implementing error.
package validator
