// Package companies implements the employer resource: CRUD with audit
// stamping and soft deletes, plus the Ref pair embedded by jobs and users.
package companies
