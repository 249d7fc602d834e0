package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/pkg/query"
)

func TestParamsNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   query.Params
		want query.Params
	}{
		{"zero values get defaults", query.Params{}, query.Params{Current: 1, PageSize: 10}},
		{"negative current clamped", query.Params{Current: -3, PageSize: 5}, query.Params{Current: 1, PageSize: 5}},
		{"valid params unchanged", query.Params{Current: 4, PageSize: 25}, query.Params{Current: 4, PageSize: 25}},
		{"oversized page clamped", query.Params{Current: 1, PageSize: 5000}, query.Params{Current: 1, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestParamsOffset(t *testing.T) {
	t.Parallel()

	assert.EqualValues(t, 0, query.Params{Current: 1, PageSize: 10}.Offset())
	assert.EqualValues(t, 40, query.Params{Current: 5, PageSize: 10}.Offset())
	assert.EqualValues(t, 75, query.Params{Current: 4, PageSize: 25}.Offset())
}

func TestNewMeta(t *testing.T) {
	t.Parallel()

	t.Run("pages round up", func(t *testing.T) {
		t.Parallel()

		meta := query.NewMeta(query.Params{Current: 2, PageSize: 10}, 101)
		assert.Equal(t, 2, meta.Current)
		assert.Equal(t, 10, meta.PageSize)
		assert.Equal(t, 11, meta.Pages)
		assert.EqualValues(t, 101, meta.Total)
	})

	t.Run("exact division", func(t *testing.T) {
		t.Parallel()

		meta := query.NewMeta(query.Params{Current: 1, PageSize: 10}, 100)
		assert.Equal(t, 10, meta.Pages)
	})

	t.Run("empty set has zero pages", func(t *testing.T) {
		t.Parallel()

		meta := query.NewMeta(query.Params{Current: 1, PageSize: 10}, 0)
		assert.Equal(t, 0, meta.Pages)
		assert.EqualValues(t, 0, meta.Total)
	})
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want bson.D
	}{
		{"descending field", "-updatedAt", bson.D{{Key: "updatedAt", Value: int32(-1)}}},
		{"mixed order", "-updatedAt,name", bson.D{
			{Key: "updatedAt", Value: int32(-1)},
			{Key: "name", Value: int32(1)},
		}},
		{"explicit ascending", "+salary", bson.D{{Key: "salary", Value: int32(1)}}},
		{"empty expression", "", nil},
		{"blank segments skipped", ",,-name,", bson.D{{Key: "name", Value: int32(-1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, query.ParseSort(tt.expr))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("strips reserved and unknown params", func(t *testing.T) {
		t.Parallel()

		values := url.Values{
			"current":  {"2"},
			"pageSize": {"10"},
			"sort":     {"-updatedAt"},
			"name":     {"Backend"},
			"secret":   {"x"},
		}
		filter := query.Filter(values, "name", "level")
		assert.Equal(t, bson.M{"name": "Backend"}, filter)
	})

	t.Run("regex values become case-insensitive matches", func(t *testing.T) {
		t.Parallel()

		values := url.Values{"name": {"/engineer/"}}
		filter := query.Filter(values, "name")
		assert.Equal(t, bson.M{"name": bson.M{"$regex": "engineer", "$options": "i"}}, filter)
	})

	t.Run("invalid regex falls back to exact match", func(t *testing.T) {
		t.Parallel()

		values := url.Values{"name": {"/[/"}}
		filter := query.Filter(values, "name")
		assert.Equal(t, bson.M{"name": "/[/"}, filter)
	})

	t.Run("empty values ignored", func(t *testing.T) {
		t.Parallel()

		values := url.Values{"name": {""}}
		assert.Empty(t, query.Filter(values, "name"))
	})
}

func TestExcludeDeleted(t *testing.T) {
	t.Parallel()

	t.Run("merges into an existing filter", func(t *testing.T) {
		t.Parallel()

		filter := query.ExcludeDeleted(bson.M{"level": "SENIOR"})
		assert.Equal(t, bson.M{
			"level":     "SENIOR",
			"isDeleted": bson.M{"$ne": true},
		}, filter)
	})

	t.Run("allocates a nil filter", func(t *testing.T) {
		t.Parallel()

		filter := query.ExcludeDeleted(nil)
		assert.Equal(t, bson.M{"isDeleted": bson.M{"$ne": true}}, filter)
	})
}

func TestProjection(t *testing.T) {
	t.Parallel()

	assert.Nil(t, query.Projection(""))
	assert.Equal(t, bson.M{"name": 1, "salary": 1}, query.Projection("name,salary"))
	assert.Equal(t, bson.M{"password": 0}, query.Projection("-password"))
}
