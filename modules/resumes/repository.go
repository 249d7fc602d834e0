package resumes

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

const collectionName = "resumes"

// Repository persists resumes in a document collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a resume repository over the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

func (r *Repository) Insert(ctx context.Context, resume Resume) (Resume, error) {
	res, err := r.coll.InsertOne(ctx, resume)
	if err != nil {
		return Resume{}, fmt.Errorf("insert resume: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		resume.ID = id
	}
	return resume, nil
}

// FindByID returns the resume regardless of soft-delete state.
func (r *Repository) FindByID(ctx context.Context, id bson.ObjectID) (Resume, error) {
	var resume Resume
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&resume)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, fmt.Errorf("find resume: %w", err)
	}
	return resume, nil
}

// List returns one page of resumes, excluding soft-deleted documents.
func (r *Repository) List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Resume], error) {
	return query.Paginate[Resume](ctx, r.coll, query.ExcludeDeleted(filter), p,
		query.WithSort(sort), query.WithProjection(projection))
}

// FindByCreator returns all resumes a user submitted, newest first.
func (r *Repository) FindByCreator(ctx context.Context, userID bson.ObjectID) ([]Resume, error) {
	cursor, err := r.coll.Find(ctx, query.ExcludeDeleted(bson.M{
		"createdBy._id": userID,
	}))
	if err != nil {
		return nil, fmt.Errorf("find resumes by creator: %w", err)
	}
	defer cursor.Close(ctx)

	var resumes []Resume
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("decode resumes: %w", err)
	}
	return resumes, nil
}

// UpdateFields applies a partial $set to the resume.
func (r *Repository) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendStatus updates the current status and appends the history event in
// a single atomic update, so the status and its trail can never diverge.
func (r *Repository) AppendStatus(ctx context.Context, id bson.ObjectID, event StatusEvent) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":    event.Status,
			"updatedBy": event.UpdatedBy,
			"updatedAt": event.UpdatedAt,
		},
		"$push": bson.M{"history": event},
	})
	if err != nil {
		return fmt.Errorf("append resume status: %w", err)
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
