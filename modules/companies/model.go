package companies

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
)

// Company is an employer profile. Jobs and HR users reference companies
// through the denormalized Ref pair.
type Company struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"name" json:"name"`
	Address     string        `bson:"address,omitempty" json:"address,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Logo        string        `bson:"logo,omitempty" json:"logo,omitempty"`

	audit.Fields `bson:",inline"`
}

// Ref is the embedded id+name pair other documents carry instead of a live
// reference. It is copied at write time and never re-resolved.
type Ref struct {
	ID   bson.ObjectID `bson:"_id" json:"_id"`
	Name string        `bson:"name" json:"name"`
}

// IsZero implements bson.Zeroer for omitempty support.
func (r Ref) IsZero() bool {
	return r.ID.IsZero() && r.Name == ""
}
