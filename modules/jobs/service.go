package jobs

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/companies"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/sanitizer"
	"github.com/hirehub/jobboard/pkg/validator"
)

var filterableFields = []string{"name", "location", "level", "skills"}

// Storage is the persistence contract of the job service.
type Storage interface {
	Insert(ctx context.Context, job Job) (Job, error)
	FindByID(ctx context.Context, id bson.ObjectID) (Job, error)
	List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Job], error)
	UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error
}

// CreateInput is the job creation payload.
type CreateInput struct {
	Name        string        `json:"name"`
	Skills      []string      `json:"skills"`
	Location    string        `json:"location"`
	Salary      float64       `json:"salary"`
	Quantity    int           `json:"quantity"`
	Level       string        `json:"level"`
	Description string        `json:"description"`
	Company     companies.Ref `json:"company"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     time.Time     `json:"endDate"`
	IsActive    bool          `json:"isActive"`
}

// UpdateInput is a partial patch; nil fields are left untouched.
type UpdateInput struct {
	Name        *string        `json:"name"`
	Skills      *[]string      `json:"skills"`
	Location    *string        `json:"location"`
	Salary      *float64       `json:"salary"`
	Quantity    *int           `json:"quantity"`
	Level       *string        `json:"level"`
	Description *string        `json:"description"`
	Company     *companies.Ref `json:"company"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	IsActive    *bool          `json:"isActive"`
}

// Option configures the job service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// Service implements the job resource operations.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// NewService creates a job service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{storage: storage, log: logger.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the payload, stamps the actor, and inserts the job.
func (s *Service) Create(ctx context.Context, input CreateInput, actor audit.Stamp) (Job, error) {
	input.Name = sanitizer.CollapseWhitespace(input.Name)

	rules := []validator.Rule{
		validator.RequiredString("name", input.Name),
		validator.Rule{
			Check: func() bool { return len(input.Skills) > 0 },
			Error: validator.ValidationError{Field: "skills", Message: "at least one skill is required"},
		},
	}
	if input.Level != "" {
		rules = append(rules, validator.InList("level", input.Level, Levels))
	}
	if err := validator.Apply(rules...); err != nil {
		return Job{}, err
	}

	job := Job{
		Name:        input.Name,
		Skills:      input.Skills,
		Location:    input.Location,
		Salary:      input.Salary,
		Quantity:    input.Quantity,
		Level:       input.Level,
		Description: input.Description,
		Company:     input.Company,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		IsActive:    input.IsActive,
		Fields:      audit.Created(actor, time.Now()),
	}

	created, err := s.storage.Insert(ctx, job)
	if err != nil {
		return Job{}, err
	}

	s.log.InfoContext(ctx, "job created",
		slog.String("job_id", created.ID.Hex()), logger.UserID(actor.ID.Hex()))

	return created, nil
}

// FindAll returns one page of jobs. Soft-deleted documents are excluded by
// the storage layer.
func (s *Service) FindAll(ctx context.Context, p query.Params, rawQuery url.Values) (query.Page[Job], error) {
	filter := query.Filter(rawQuery, filterableFields...)
	sort := query.ParseSort(p.Sort)
	projection := query.Projection(rawQuery.Get("fields"))
	return s.storage.List(ctx, filter, p, sort, projection)
}

// FindOne returns a job by hex id. Malformed ids read as not found;
// soft-deleted jobs are still returned.
func (s *Service) FindOne(ctx context.Context, id string) (Job, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return Job{}, ErrNotFound
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
	if patch.Skills != nil {
		set["skills"] = *patch.Skills
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Salary != nil {
		set["salary"] = *patch.Salary
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Level != nil {
		if err := validator.Apply(validator.InList("level", *patch.Level, Levels)); err != nil {
			return err
		}
		set["level"] = *patch.Level
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.StartDate != nil {
		set["startDate"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["endDate"] = *patch.EndDate
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}

	return s.storage.UpdateFields(ctx, oid, set)
}

// Remove soft-deletes the job with actor attribution.
func (s *Service) Remove(ctx context.Context, id string, actor audit.Stamp) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return s.storage.SoftDelete(ctx, oid, actor)
}
