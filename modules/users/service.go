package users

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/auth"
	"github.com/hirehub/jobboard/modules/companies"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/sanitizer"
	"github.com/hirehub/jobboard/pkg/validator"
)

var filterableFields = []string{"name", "email", "role", "gender", "address"}

// Storage is the persistence contract of the user service.
type Storage interface {
	Insert(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[User], error)
	UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error
}

// CreateInput is the admin-side user creation payload.
type CreateInput struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Age      int            `json:"age"`
	Gender   string         `json:"gender"`
	Address  string         `json:"address"`
	Role     string         `json:"role"`
	Company  *companies.Ref `json:"company"`
}

// UpdateInput is a partial patch; nil fields are left untouched. Email and
// password are deliberately not patchable through this path.
type UpdateInput struct {
	Name    *string        `json:"name"`
	Age     *int           `json:"age"`
	Gender  *string        `json:"gender"`
	Address *string        `json:"address"`
	Role    *string        `json:"role"`
	Company *companies.Ref `json:"company"`
}

// Created acknowledges a new account without echoing the document.
type Created struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Option configures the user service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// Service implements the user resource operations.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// NewService creates a user service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{storage: storage, log: logger.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the payload, hashes the password, and inserts the user.
// Duplicate emails conflict; the unique index backs the check under
// concurrency.
func (s *Service) Create(ctx context.Context, input CreateInput, actor audit.Stamp) (Created, error) {
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Name = sanitizer.CollapseWhitespace(input.Name)
	if input.Role == "" {
		input.Role = auth.RoleUser
	}

	if err := validator.Apply(
		validator.RequiredString("name", input.Name),
		validator.RequiredString("email", input.Email),
		validator.ValidEmail("email", input.Email),
		validator.RequiredString("password", input.Password),
		validator.MinLenString("password", input.Password, 6),
		validator.InList("role", input.Role, []string{auth.RoleAdmin, auth.RoleHR, auth.RoleUser}),
	); err != nil {
		return Created{}, err
	}

	if _, err := s.storage.FindByEmail(ctx, input.Email); err == nil {
		return Created{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return Created{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Age:      input.Age,
		Gender:   input.Gender,
		Address:  input.Address,
		Role:     input.Role,
		Fields:   audit.Created(actor, time.Now()),
	}
	if input.Company != nil {
		user.Company = *input.Company
	}

	created, err := s.storage.Insert(ctx, user)
	if err != nil {
		return Created{}, err
	}

	s.log.InfoContext(ctx, "user created",
		logger.Email(created.Email), logger.UserID(actor.ID.Hex()))

	return Created{ID: created.ID.Hex(), CreatedAt: created.CreatedAt}, nil
}

// FindAll returns one page of users. Soft-deleted accounts are excluded by
// the storage layer; password hashes never leave the JSON boundary.
func (s *Service) FindAll(ctx context.Context, p query.Params, rawQuery url.Values) (query.Page[User], error) {
	filter := query.Filter(rawQuery, filterableFields...)
	sort := query.ParseSort(p.Sort)
	projection := query.Projection(rawQuery.Get("fields"))
	return s.storage.List(ctx, filter, p, sort, projection)
}

// FindOne returns a user by hex id. Malformed ids read as not found; a
// soft-deleted account is still returned.
func (s *Service) FindOne(ctx context.Context, id string) (User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	return s.storage.FindByID(ctx, oid)
}

// Update applies a partial patch and stamps the actor.
func (s *Service) Update(ctx context.Context, id string, patch UpdateInput, actor audit.Stamp) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{
		"updatedBy": actor,
		"updatedAt": time.Now(),
	}
	if patch.Name != nil {
		set["name"] = sanitizer.CollapseWhitespace(*patch.Name)
	}
	if patch.Age != nil {
		set["age"] = *patch.Age
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Role != nil {
		if err := validator.Apply(
			validator.InList("role", *patch.Role, []string{auth.RoleAdmin, auth.RoleHR, auth.RoleUser}),
		); err != nil {
			return err
		}
		set["role"] = *patch.Role
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}

	return s.storage.UpdateFields(ctx, oid, set)
}

// Remove soft-deletes the user with actor attribution.
func (s *Service) Remove(ctx context.Context, id string, actor audit.Stamp) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return s.storage.SoftDelete(ctx, oid, actor)
}
