package companies

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/sanitizer"
	"github.com/hirehub/jobboard/pkg/validator"
)

// filterableFields are the query-string keys accepted as list filters.
var filterableFields = []string{"name", "address"}

// Storage is the persistence contract of the company service.
type Storage interface {
	Insert(ctx context.Context, company Company) (Company, error)
	FindByID(ctx context.Context, id bson.ObjectID) (Company, error)
	List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Company], error)
	UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error
}

// CreateInput is the company creation payload.
type CreateInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
}

// Option configures the company service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// Service implements the company resource operations.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// NewService creates a company service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{storage: storage, log: logger.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the payload, stamps the actor, and inserts the company.
func (s *Service) Create(ctx context.Context, input CreateInput, actor audit.Stamp) (Company, error) {
	input.Name = sanitizer.CollapseWhitespace(input.Name)

	if err := validator.Apply(
		validator.RequiredString("name", input.Name),
	); err != nil {
		return Company{}, err
	}

	company := Company{
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		Logo:        input.Logo,
		Fields:      audit.Created(actor, time.Now()),
	}

	created, err := s.storage.Insert(ctx, company)
	if err != nil {
		return Company{}, err
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("company_id", created.ID.Hex()), logger.UserID(actor.ID.Hex()))

	return created, nil
}

// FindAll returns one page of companies. Soft-deleted documents are
// excluded by the storage layer.
func (s *Service) FindAll(ctx context.Context, p query.Params, rawQuery url.Values) (query.Page[Company], error) {
	filter := query.Filter(rawQuery, filterableFields...)
	sort := query.ParseSort(p.Sort)
	projection := query.Projection(rawQuery.Get("fields"))
	return s.storage.List(ctx, filter, p, sort, projection)
}

// FindOne returns a company by hex id. A malformed id reads as not found.
// Soft-deleted companies are still returned here.
func (s *Service) FindOne(ctx context.Context, id string) (Company, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return Company{}, ErrNotFound
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
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Logo != nil {
		set["logo"] = *patch.Logo
	}

	return s.storage.UpdateFields(ctx, oid, set)
}

// Remove soft-deletes the company with actor attribution.
func (s *Service) Remove(ctx context.Context, id string, actor audit.Stamp) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return s.storage.SoftDelete(ctx, oid, actor)
}
