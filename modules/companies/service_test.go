package companies_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/companies"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/validator"
)

type fakeStorage struct {
	byID map[bson.ObjectID]companies.Company

	lastFilter bson.M
	lastParams query.Params
	lastSort   bson.D
	lastSet    bson.M
	deleted    map[bson.ObjectID]audit.Stamp
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		byID:    make(map[bson.ObjectID]companies.Company),
		deleted: make(map[bson.ObjectID]audit.Stamp),
	}
}

func (f *fakeStorage) Insert(_ context.Context, c companies.Company) (companies.Company, error) {
	c.ID = bson.NewObjectID()
	f.byID[c.ID] = c
	return c, nil
}

func (f *fakeStorage) FindByID(_ context.Context, id bson.ObjectID) (companies.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return companies.Company{}, companies.ErrNotFound
	}
	return c, nil
}

func (f *fakeStorage) List(_ context.Context, filter bson.M, p query.Params, sort bson.D, _ bson.M) (query.Page[companies.Company], error) {
	f.lastFilter = filter
	f.lastParams = p
	f.lastSort = sort
	return query.Page[companies.Company]{Meta: query.NewMeta(p.Normalize(), 0)}, nil
}

func (f *fakeStorage) UpdateFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	if _, ok := f.byID[id]; !ok {
		return companies.ErrNotFound
	}
	f.lastSet = set
	return nil
}

func (f *fakeStorage) SoftDelete(_ context.Context, id bson.ObjectID, actor audit.Stamp) error {
	if _, ok := f.byID[id]; !ok {
		return companies.ErrNotFound
	}
	f.deleted[id] = actor
	return nil
}

func testActor() audit.Stamp {
	return audit.NewStamp(bson.NewObjectID(), "Eric")
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stamps actor and audit fields", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := companies.NewService(storage)
		actor := testActor()

		created, err := svc.Create(context.Background(), companies.CreateInput{
			Name:    "  Hire  Hub  ",
			Address: "Hanoi",
		}, actor)
		require.NoError(t, err)

		assert.Equal(t, "Hire Hub", created.Name)
		assert.Equal(t, actor, created.CreatedBy)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.IsDeleted)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		svc := companies.NewService(newFakeStorage())

		_, err := svc.Create(context.Background(), companies.CreateInput{}, testActor())
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestServiceFindAll(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := companies.NewService(storage)

	raw, err := url.ParseQuery("current=2&pageSize=5&sort=-updatedAt&name=/hub/&owner=x")
	require.NoError(t, err)

	_, err = svc.FindAll(context.Background(), query.Params{Current: 2, PageSize: 5, Sort: "-updatedAt"}, raw)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": bson.M{"$regex": "hub", "$options": "i"}}, storage.lastFilter)
	assert.Equal(t, bson.D{{Key: "updatedAt", Value: int32(-1)}}, storage.lastSort)
	assert.Equal(t, 2, storage.lastParams.Current)
}

func TestServiceFindOne(t *testing.T) {
	t.Parallel()

	t.Run("malformed id reads as not found", func(t *testing.T) {
		t.Parallel()

		svc := companies.NewService(newFakeStorage())
		_, err := svc.FindOne(context.Background(), "not-a-hex-id")
		assert.ErrorIs(t, err, companies.ErrNotFound)
	})

	t.Run("returns stored company", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := companies.NewService(storage)

		created, err := svc.Create(context.Background(), companies.CreateInput{Name: "HireHub"}, testActor())
		require.NoError(t, err)

		found, err := svc.FindOne(context.Background(), created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := companies.NewService(storage)
	actor := testActor()

	created, err := svc.Create(context.Background(), companies.CreateInput{Name: "HireHub"}, actor)
	require.NoError(t, err)

	name := "HireHub Global"
	require.NoError(t, svc.Update(context.Background(), created.ID.Hex(), companies.UpdateInput{Name: &name}, actor))

	assert.Equal(t, "HireHub Global", storage.lastSet["name"])
	assert.Equal(t, actor, storage.lastSet["updatedBy"])
	assert.NotContains(t, storage.lastSet, "address")
}

func TestServiceRemove(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := companies.NewService(storage)
	actor := testActor()

	created, err := svc.Create(context.Background(), companies.CreateInput{Name: "HireHub"}, actor)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.ID.Hex(), actor))
	assert.Equal(t, actor, storage.deleted[created.ID])

	err = svc.Remove(context.Background(), bson.NewObjectID().Hex(), actor)
	assert.ErrorIs(t, err, companies.ErrNotFound)
}
