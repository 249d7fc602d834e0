package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// buildFindOptions materializes the options builder the way the driver does.
func buildFindOptions(t *testing.T, p Params, cfg *paginateConfig) *options.FindOptions {
	t.Helper()
	built := &options.FindOptions{}
	for _, apply := range findOptions(p, cfg).Opts {
		require.NoError(t, apply(built))
	}
	return built
}

func TestFindOptions(t *testing.T) {
	t.Parallel()

	t.Run("limit equals page size and skip targets the page", func(t *testing.T) {
		t.Parallel()

		p := Params{Current: 3, PageSize: 25}.Normalize()
		opts := buildFindOptions(t, p, &paginateConfig{})

		require.NotNil(t, opts.Skip)
		require.NotNil(t, opts.Limit)
		assert.EqualValues(t, 50, *opts.Skip)
		assert.EqualValues(t, 25, *opts.Limit)
	})

	t.Run("zero params fall back to the first default-sized page", func(t *testing.T) {
		t.Parallel()

		opts := buildFindOptions(t, Params{}.Normalize(), &paginateConfig{})

		require.NotNil(t, opts.Skip)
		require.NotNil(t, opts.Limit)
		assert.EqualValues(t, 0, *opts.Skip)
		assert.EqualValues(t, DefaultPageSize, *opts.Limit)
	})

	t.Run("oversized page size is capped", func(t *testing.T) {
		t.Parallel()

		p := Params{Current: 1, PageSize: 5000}.Normalize()
		opts := buildFindOptions(t, p, &paginateConfig{})

		require.NotNil(t, opts.Limit)
		assert.EqualValues(t, MaxPageSize, *opts.Limit)
	})

	t.Run("sort and projection pass through", func(t *testing.T) {
		t.Parallel()

		cfg := &paginateConfig{
			sort:       bson.D{{Key: "updatedAt", Value: int32(-1)}},
			projection: bson.M{"password": 0},
		}
		opts := buildFindOptions(t, Params{Current: 1, PageSize: 10}, cfg)

		assert.Equal(t, cfg.sort, opts.Sort)
		assert.Equal(t, cfg.projection, opts.Projection)
	})

	t.Run("sort and projection omitted by default", func(t *testing.T) {
		t.Parallel()

		opts := buildFindOptions(t, Params{Current: 1, PageSize: 10}, &paginateConfig{})

		assert.Nil(t, opts.Sort)
		assert.Nil(t, opts.Projection)
	})
}
