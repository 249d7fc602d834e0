package users

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/companies"
)

// User is an account document. Password hash and refresh token are never
// serialized out of the API.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Password     string        `bson:"password" json:"-"`
	Age          int           `bson:"age,omitempty" json:"age,omitempty"`
	Gender       string        `bson:"gender,omitempty" json:"gender,omitempty"`
	Address      string        `bson:"address,omitempty" json:"address,omitempty"`
	Role         string        `bson:"role" json:"role"`
	Company      companies.Ref `bson:"company,omitempty" json:"company,omitzero"`
	RefreshToken string        `bson:"refreshToken,omitempty" json:"-"`

	audit.Fields `bson:",inline"`
}
