package query

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// PaginateOption customizes a Paginate call.
type PaginateOption func(*paginateConfig)

type paginateConfig struct {
	sort       bson.D
	projection bson.M
}

// WithSort sets the sort order of the page.
func WithSort(sort bson.D) PaginateOption {
	return func(c *paginateConfig) {
		c.sort = sort
	}
}

// WithProjection limits the fields returned for each document.
func WithProjection(projection bson.M) PaginateOption {
	return func(c *paginateConfig) {
		c.projection = projection
	}
}

// Paginate runs a paged Find over the collection. The total is taken from
// CountDocuments with the same filter, so the metadata always reflects the
// filtered set rather than the whole collection. Params are normalized
// before use.
func Paginate[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, p Params, opts ...PaginateOption) (Page[T], error) {
	cfg := &paginateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	p = p.Normalize()
	if filter == nil {
		filter = bson.M{}
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return Page[T]{}, fmt.Errorf("count documents: %w", err)
	}

	cursor, err := coll.Find(ctx, filter, findOptions(p, cfg))
	if err != nil {
		return Page[T]{}, fmt.Errorf("find documents: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]T, 0, p.PageSize)
	if err := cursor.All(ctx, &result); err != nil {
		return Page[T]{}, fmt.Errorf("decode documents: %w", err)
	}

	return Page[T]{
		Meta:   NewMeta(p, total),
		Result: result,
	}, nil
}

// findOptions builds the find options for one page of normalized params.
// The limit equals the page size, so a page can never carry more documents
// than requested.
func findOptions(p Params, cfg *paginateConfig) *options.FindOptionsBuilder {
	findOpts := options.Find().
		SetSkip(p.Offset()).
		SetLimit(int64(p.PageSize))
	if len(cfg.sort) > 0 {
		findOpts = findOpts.SetSort(cfg.sort)
	}
	if cfg.projection != nil {
		findOpts = findOpts.SetProjection(cfg.projection)
	}
	return findOpts
}
