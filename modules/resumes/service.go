package resumes

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/query"
	"github.com/hirehub/jobboard/pkg/validator"
)

var filterableFields = []string{"email", "status", "companyId", "jobId"}

// Storage is the persistence contract of the resume service.
type Storage interface {
	Insert(ctx context.Context, resume Resume) (Resume, error)
	FindByID(ctx context.Context, id bson.ObjectID) (Resume, error)
	List(ctx context.Context, filter bson.M, p query.Params, sort bson.D, projection bson.M) (query.Page[Resume], error)
	FindByCreator(ctx context.Context, userID bson.ObjectID) ([]Resume, error)
	UpdateFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	AppendStatus(ctx context.Context, id bson.ObjectID, event StatusEvent) error
	SoftDelete(ctx context.Context, id bson.ObjectID, actor audit.Stamp) error
}

// CreateInput is the resume submission payload. Status is not accepted
// from the client: every submission starts at PENDING.
type CreateInput struct {
	URL       string `json:"url"`
	CompanyID string `json:"companyId"`
	JobID     string `json:"jobId"`
}

// UpdateInput patches the submission itself, not its status; status moves
// only through UpdateStatus so the history stays complete.
type UpdateInput struct {
	URL *string `json:"url"`
}

// Option configures the resume service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// Service implements the resume resource operations.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// NewService creates a resume service.
func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{storage: storage, log: logger.Noop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Actor is the submitting or reviewing user. Email and id come from the
// resolved identity, never from the request body.
type Actor struct {
	ID    bson.ObjectID
	Name  string
	Email string
}

func (a Actor) stamp() audit.Stamp {
	return audit.NewStamp(a.ID, a.Name)
}

// Create validates the submission and inserts it with status PENDING and a
// single-entry history recording the submitter.
func (s *Service) Create(ctx context.Context, input CreateInput, actor Actor) (Resume, error) {
	if err := validator.Apply(
		validator.RequiredString("url", input.URL),
		validator.RequiredString("companyId", input.CompanyID),
		validator.ValidObjectIDHex("companyId", input.CompanyID),
		validator.RequiredString("jobId", input.JobID),
		validator.ValidObjectIDHex("jobId", input.JobID),
	); err != nil {
		return Resume{}, err
	}

	companyID, err := bson.ObjectIDFromHex(input.CompanyID)
	if err != nil {
		return Resume{}, validator.ValidationErrors{{Field: "companyId", Message: "invalid id"}}
	}
	jobID, err := bson.ObjectIDFromHex(input.JobID)
	if err != nil {
		return Resume{}, validator.ValidationErrors{{Field: "jobId", Message: "invalid id"}}
	}

	now := time.Now()
	resume := Resume{
		Email:     actor.Email,
		UserID:    actor.ID,
		URL:       input.URL,
		Status:    StatusPending,
		CompanyID: companyID,
		JobID:     jobID,
		History: []StatusEvent{{
			Status:    StatusPending,
			UpdatedAt: now,
			UpdatedBy: actor.stamp(),
		}},
		Fields: audit.Created(actor.stamp(), now),
	}

	created, err := s.storage.Insert(ctx, resume)
	if err != nil {
		return Resume{}, err
	}

	s.log.InfoContext(ctx, "resume submitted",
		slog.String("resume_id", created.ID.Hex()), logger.UserID(actor.ID.Hex()))

	return created, nil
}

// FindAll returns one page of resumes. Soft-deleted documents are excluded
// by the storage layer.
func (s *Service) FindAll(ctx context.Context, p query.Params, rawQuery url.Values) (query.Page[Resume], error) {
	filter := query.Filter(rawQuery, filterableFields...)
	sort := query.ParseSort(p.Sort)
	projection := query.Projection(rawQuery.Get("fields"))
	return s.storage.List(ctx, filter, p, sort, projection)
}

// FindOne returns a resume by hex id. Malformed ids read as not found;
// soft-deleted resumes are still returned.
func (s *Service) FindOne(ctx context.Context, id string) (Resume, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return Resume{}, ErrNotFound
	}
	return s.storage.FindByID(ctx, oid)
}

// FindByUser returns the resumes the actor submitted.
func (s *Service) FindByUser(ctx context.Context, actor Actor) ([]Resume, error) {
	return s.storage.FindByCreator(ctx, actor.ID)
}

// Update patches the submission and stamps the actor.
func (s *Service) Update(ctx context.Context, id string, patch UpdateInput, actor Actor) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{
		"updatedBy": actor.stamp(),
		"updatedAt": time.Now(),
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}

	return s.storage.UpdateFields(ctx, oid, set)
}

// UpdateStatus moves the resume to a new status and appends the transition
// to the history in one atomic update.
func (s *Service) UpdateStatus(ctx context.Context, id string, actor Actor, status string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	if err := validator.Apply(
		validator.RequiredString("status", status),
		validator.InList("status", status, Statuses),
	); err != nil {
		return err
	}

	return s.storage.AppendStatus(ctx, oid, StatusEvent{
		Status:    status,
		UpdatedAt: time.Now(),
		UpdatedBy: actor.stamp(),
	})
}

// Remove soft-deletes the resume with actor attribution.
func (s *Service) Remove(ctx context.Context, id string, actor Actor) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	return s.storage.SoftDelete(ctx, oid, actor.stamp())
}
