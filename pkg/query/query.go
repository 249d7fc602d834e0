package query

// DefaultPageSize is applied when a request does not specify pageSize.
const DefaultPageSize = 10

// MaxPageSize caps pageSize to keep a single page bounded.
const MaxPageSize = 100

// Params carries the pagination and sorting inputs of a list request.
// Field names follow the query string convention: ?current=2&pageSize=25.
type Params struct {
	Current  int    `query:"current" json:"current"`
	PageSize int    `query:"pageSize" json:"pageSize"`
	Sort     string `query:"sort" json:"sort,omitempty"`
}

// Normalize clamps Params to valid values. Zero or negative current becomes
// page 1, zero or negative pageSize becomes DefaultPageSize.
func (p Params) Normalize() Params {
	if p.Current < 1 {
		p.Current = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of documents to skip for the current page.
func (p Params) Offset() int64 {
	return int64(p.Current-1) * int64(p.PageSize)
}

// Meta describes one page of a listing.
type Meta struct {
	Current  int   `json:"current"`
	PageSize int   `json:"pageSize"`
	Pages    int   `json:"pages"`
	Total    int64 `json:"total"`
}

// Page is one page of results together with its pagination metadata.
type Page[T any] struct {
	Meta   Meta `json:"meta"`
	Result []T  `json:"result"`
}

// NewMeta computes page metadata from normalized params and a total count.
// Pages is the ceiling of total divided by page size.
func NewMeta(p Params, total int64) Meta {
	pages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return Meta{
		Current:  p.Current,
		PageSize: p.PageSize,
		Pages:    pages,
		Total:    total,
	}
}
