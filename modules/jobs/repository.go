package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/pkg/query"
)

const collectionName = "jobs"

// Repository persists jobs in a document collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a job repository over the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

func (r *Repository) Insert(ctx context.Context, job Job) (Job, error) {
	res, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return Job{}, fmt.Errorf("insert job: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		job.ID = id
	}
	return job, nil
}

// FindByID returns the job regardless of soft-delete state.
func (r *Repository) FindByID(ctx context.Context, id bson.ObjectID) (Job, error) {
	var job Job
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Job{}, ErrNotFound
		}
		return Job{}, fmt.Errorf("find job: %w", err)
	}
	return job, nil
}

// List returns one page of jobs, excluding soft-deleted documents.
func (r *Repository) List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Job], error) {
	return query.Paginate[Job](ctx, r.coll, query.ExcludeDeleted(filter), p,
		query.WithSort(sort), query.WithProjection(projection))
}

// UpdateFields applies a partial $set to the job.
func (r *Repository) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete stamps the actor and flips the soft-delete flag.
func (r *Repository) SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error {
	now := time.Now()
	return r.UpdateFields(ctx, id, bson.M{
		"deletedBy": actor,
		"isDeleted": true,
		"deletedAt": now,
		"updatedAt": now,
	})
}
