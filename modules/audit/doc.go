// Package audit defines the shared audit-trail value types: actor stamps
// and the created/updated/soft-deleted fields embedded in every entity.
package audit
