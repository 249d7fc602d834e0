// Package jobs implements the job-posting resource with audit stamping,
// soft deletes, and public browsing of open positions.
package jobs
