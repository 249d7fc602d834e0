// Package resumes implements the application resource: submissions start
// at PENDING and every status transition is appended to an immutable
// history alongside the reviewing actor.
package resumes
