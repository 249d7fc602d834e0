package resumes

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
)

// Resume statuses. Every submission starts at PENDING; each transition is
// appended to the history, never rewritten.
const (
	StatusPending   = "PENDING"
	StatusReviewing = "REVIEWING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

// Statuses lists all accepted resume statuses.
var Statuses = []string{StatusPending, StatusReviewing, StatusApproved, StatusRejected}

// StatusEvent is one entry of the append-only status history.
type StatusEvent struct {
	Status    string      `bson:"status" json:"status"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy audit.Stamp `bson:"updatedBy" json:"updatedBy"`
}

// Resume is a candidate's application for a job.
type Resume struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string        `bson:"email" json:"email"`
	UserID    bson.ObjectID `bson:"userId" json:"userId"`
	URL       string        `bson:"url" json:"url"`
	Status    string        `bson:"status" json:"status"`
	CompanyID bson.ObjectID `bson:"companyId" json:"companyId"`
	JobID     bson.ObjectID `bson:"jobId" json:"jobId"`
	History   []StatusEvent `bson:"history" json:"history"`

	audit.Fields `bson:",inline"`
}
