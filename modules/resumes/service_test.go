package resumes_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/resumes"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/validator"
)

type fakeStorage struct {
	byID map[bson.ObjectID]resumes.Resume

	lastFilter bson.M
	deleted    map[bson.ObjectID]audit.Stamp
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		byID:    make(map[bson.ObjectID]resumes.Resume),
		deleted: make(map[bson.ObjectID]audit.Stamp),
	}
}

func (f *fakeStorage) Insert(_ context.Context, r resumes.Resume) (resumes.Resume, error) {
	r.ID = bson.NewObjectID()
	f.byID[r.ID] = r
	return r, nil
}

func (f *fakeStorage) FindByID(_ context.Context, id bson.ObjectID) (resumes.Resume, error) {
	r, ok := f.byID[id]
	if !ok {
		return resumes.Resume{}, resumes.ErrNotFound
	}
	return r, nil
}

func (f *fakeStorage) List(_ context.Context, filter bson.M, p query.Params, _ bson.D, _ bson.M) (query.Page[resumes.Resume], error) {
	f.lastFilter = filter
	return query.Page[resumes.Resume]{Meta: query.NewMeta(p.Normalize(), 0)}, nil
}

func (f *fakeStorage) FindByCreator(_ context.Context, userID bson.ObjectID) ([]resumes.Resume, error) {
	var out []resumes.Resume
	for _, r := range f.byID {
		if r.CreatedBy.ID == userID && !r.IsDeleted {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	if _, ok := f.byID[id]; !ok {
		return resumes.ErrNotFound
	}
	return nil
}

func (f *fakeStorage) AppendStatus(_ context.Context, id bson.ObjectID, event resumes.StatusEvent) error {
	r, ok := f.byID[id]
	if !ok {
		return resumes.ErrNotFound
	}
	r.Status = event.Status
	r.UpdatedBy = event.UpdatedBy
	r.UpdatedAt = event.UpdatedAt
	r.History = append(r.History, event)
	f.byID[id] = r
	return nil
}

func (f *fakeStorage) SoftDelete(_ context.Context, id bson.ObjectID, actor audit.Stamp) error {
	r, ok := f.byID[id]
	if !ok {
		return resumes.ErrNotFound
	}
	r.IsDeleted = true
	f.byID[id] = r
	f.deleted[id] = actor
	return nil
}

func testActor() resumes.Actor {
	return resumes.Actor{
		ID:    bson.NewObjectID(),
		Name:  "Candidate",
		Email: "candidate@gmail.com",
	}
}

func validInput() resumes.CreateInput {
	return resumes.CreateInput{
		URL:       "resume-1694152923266.pdf",
		CompanyID: bson.NewObjectID().Hex(),
		JobID:     bson.NewObjectID().Hex(),
	}
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("starts at PENDING with one history entry", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := resumes.NewService(storage)
		actor := testActor()

		created, err := svc.Create(context.Background(), validInput(), actor)
		require.NoError(t, err)

		assert.Equal(t, resumes.StatusPending, created.Status)
		assert.Equal(t, actor.Email, created.Email)
		assert.Equal(t, actor.ID, created.UserID)

		require.Len(t, created.History, 1)
		assert.Equal(t, resumes.StatusPending, created.History[0].Status)
		assert.Equal(t, actor.ID, created.History[0].UpdatedBy.ID)
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		t.Parallel()

		svc := resumes.NewService(newFakeStorage())
		input := validInput()
		input.JobID = "not-hex"

		_, err := svc.Create(context.Background(), input, testActor())
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		svc := resumes.NewService(newFakeStorage())
		input := validInput()
		input.URL = ""

		_, err := svc.Create(context.Background(), input, testActor())
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestServiceUpdateStatus(t *testing.T) {
	t.Parallel()

	t.Run("appends history with the reviewing actor", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := resumes.NewService(storage)
		candidate := testActor()

		created, err := svc.Create(context.Background(), validInput(), candidate)
		require.NoError(t, err)

		reviewer := resumes.Actor{ID: bson.NewObjectID(), Name: "HR Manager", Email: "hr@gmail.com"}
		require.NoError(t, svc.UpdateStatus(context.Background(), created.ID.Hex(), reviewer, resumes.StatusReviewing))

		updated, err := svc.FindOne(context.Background(), created.ID.Hex())
		require.NoError(t, err)

		assert.Equal(t, resumes.StatusReviewing, updated.Status)
		require.Len(t, updated.History, 2)
		assert.Equal(t, resumes.StatusPending, updated.History[0].Status)
		assert.Equal(t, resumes.StatusReviewing, updated.History[1].Status)
		assert.Equal(t, reviewer.ID, updated.History[1].UpdatedBy.ID)
		assert.Equal(t, "HR Manager", updated.History[1].UpdatedBy.Name)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := resumes.NewService(storage)

		created, err := svc.Create(context.Background(), validInput(), testActor())
		require.NoError(t, err)

		err = svc.UpdateStatus(context.Background(), created.ID.Hex(), testActor(), "SHREDDED")
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("missing resume reads as not found", func(t *testing.T) {
		t.Parallel()

		svc := resumes.NewService(newFakeStorage())
		err := svc.UpdateStatus(context.Background(), bson.NewObjectID().Hex(), testActor(), resumes.StatusApproved)
		assert.ErrorIs(t, err, resumes.ErrNotFound)
	})
}

func TestServiceFindByUser(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := resumes.NewService(storage)
	candidate := testActor()
	other := testActor()

	_, err := svc.Create(context.Background(), validInput(), candidate)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validInput(), other)
	require.NoError(t, err)

	mine, err := svc.FindByUser(context.Background(), candidate)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, candidate.ID, mine[0].UserID)
}

func TestServiceFindAll(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := resumes.NewService(storage)

	raw, err := url.ParseQuery("current=1&pageSize=10&status=PENDING")
	require.NoError(t, err)

	_, err = svc.FindAll(context.Background(), query.Params{Current: 1, PageSize: 10}, raw)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"status": "PENDING"}, storage.lastFilter)
}

func TestServiceFindOne(t *testing.T) {
	t.Parallel()

	t.Run("still returns soft-deleted resumes", func(t *testing.T) {
		t.Parallel()

		storage := newFakeStorage()
		svc := resumes.NewService(storage)
		actor := testActor()

		created, err := svc.Create(context.Background(), validInput(), actor)
		require.NoError(t, err)
		require.NoError(t, svc.Remove(context.Background(), created.ID.Hex(), actor))

		found, err := svc.FindOne(context.Background(), created.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.True(t, found.IsDeleted)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		t.Parallel()

		svc := resumes.NewService(newFakeStorage())
		_, err := svc.FindOne(context.Background(), "not-hex")
		assert.ErrorIs(t, err, resumes.ErrNotFound)
	})
}

func TestServiceRemove(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage()
	svc := resumes.NewService(storage)
	actor := testActor()

	created, err := svc.Create(context.Background(), validInput(), actor)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.ID.Hex(), actor))
	assert.Equal(t, actor.ID, storage.deleted[created.ID].ID)

	// soft-deleted submissions no longer show up in the user's list
	mine, err := svc.FindByUser(context.Background(), actor)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
