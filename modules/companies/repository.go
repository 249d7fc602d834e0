package companies

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

const collectionName = "companies"

// Repository persists companies in a document collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a company repository over the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

func (r *Repository) Insert(ctx context.Context, company Company) (Company, error) {
	res, err := r.coll.InsertOne(ctx, company)
	if err != nil {
		return Company{}, fmt.Errorf("insert company: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		company.ID = id
	}
	return company, nil
}

// FindByID returns the company regardless of its soft-delete state.
func (r *Repository) FindByID(ctx context.Context, id bson.ObjectID) (Company, error) {
	var company Company
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Company{}, ErrNotFound
		}
		return Company{}, fmt.Errorf("find company: %w", err)
	}
	return company, nil
}

// List returns one page of companies, excluding soft-deleted documents.
func (r *Repository) List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Company], error) {
	return query.Paginate[Company](ctx, r.coll, query.ExcludeDeleted(filter), p,
		query.WithSort(sort), query.WithProjection(projection))
}

// UpdateFields applies a partial $set to the company.
func (r *Repository) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete stamps the actor and flips the soft-delete flag. The document
// stays in the collection.
func (r *Repository) SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error {
	now := time.Now()
	return r.UpdateFields(ctx, id, bson.M{
		"deletedBy": actor,
		"isDeleted": true,
		"deletedAt": now,
		"updatedAt": now,
	})
}
