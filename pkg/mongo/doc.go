// Package mongo provides a configured MongoDB client constructor with
// connection retries and a health check helper.
package mongo
