package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/pkg/query"
)

const collectionName = "users"

// Repository persists user accounts in a document collection.
type Repository struct {
	coll *mongo.Collection
}

// NewRepository creates a user repository over the given database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index. The index closes the
// duplicate-email race that an application-level existence check alone
// cannot.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, user User) (User, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

// FindByID returns the user regardless of soft-delete state.
func (r *Repository) FindByID(ctx context.Context, id bson.ObjectID) (User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByRefreshToken looks up the account holding the exact token. Exact
// match is the single-active-token rule: a rotated-out token matches
// nothing.
func (r *Repository) FindByRefreshToken(ctx context.Context, token string) (User, error) {
	return r.findOne(ctx, bson.M{"refreshToken": token})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (User, error) {
	var user User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// List returns one page of users, excluding soft-deleted documents.
func (r *Repository) List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[User], error) {
	return query.Paginate[User](ctx, r.coll, query.ExcludeDeleted(filter), p,
		query.WithSort(sort), query.WithProjection(projection))
}

// UpdateFields applies a partial $set to the user.
func (r *Repository) UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRefreshToken stores the active refresh token; an empty token revokes it.
func (r *Repository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"refreshToken": token}})
	if err != nil {
		return fmt.Errorf("set refresh token: %w", err)
	}
	return nil
}

// SoftDelete stamps the actor and flips the soft-delete flag. The refresh
// token is revoked in the same update so a deleted account cannot keep its
// session alive.
func (r *Repository) SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error {
	now := time.Now()
	return r.UpdateFields(ctx, id, bson.M{
		"deletedBy":    actor,
		"isDeleted":    true,
		"deletedAt":    now,
		"updatedAt":    now,
		"refreshToken": "",
	})
}

// UpsertByEmail inserts the user unless an account with the same email
// already exists. Used by the seed step to stay idempotent.
func (r *Repository) UpsertByEmail(ctx context.Context, user User) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$setOnInsert": user},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", user.Email, err)
	}
	return nil
}
