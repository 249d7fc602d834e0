package jobs

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/companies"
)

// Job levels accepted by validation.
const (
	LevelIntern  = "INTERN"
	LevelFresher = "FRESHER"
	LevelJunior  = "JUNIOR"
	LevelMiddle  = "MIDDLE"
	LevelSenior  = "SENIOR"
)

// Levels lists all accepted job levels.
var Levels = []string{LevelIntern, LevelFresher, LevelJunior, LevelMiddle, LevelSenior}

// Job is an open position posted by a company.
type Job struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name"`
	Skills      []string      `bson:"skills" json:"skills"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	Salary      float64       `bson:"salary,omitempty" json:"salary,omitempty"`
	Quantity    int           `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Level       string        `bson:"level,omitempty" json:"level,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Company     companies.Ref `bson:"company,omitempty" json:"company,omitzero"`
	StartDate   time.Time     `bson:"startDate,omitempty" json:"startDate,omitzero"`
	EndDate     time.Time     `bson:"endDate,omitempty" json:"endDate,omitzero"`
	IsActive    bool          `bson:"isActive" json:"isActive"`

	audit.Fields `bson:",inline"`
}
