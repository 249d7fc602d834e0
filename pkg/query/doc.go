// Package query implements offset pagination for document collections.
// List endpoints bind Params from the query string, build a filter with
// Filter, and hand both to Paginate, which returns one Page with uniform
// metadata: current page, page size, total pages, and total documents.
package query
