package audit

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Stamp is a point-in-time snapshot of the actor who touched a document.
// It is denormalized on purpose: renaming the account later must not rewrite
// history, so a stamp is never resolved back to a live user.
type Stamp struct {
	ID   bson.ObjectID `bson:"_id" json:"_id"`
	Name string        `bson:"name" json:"name"`
}

// NewStamp creates an actor stamp.
func NewStamp(id bson.ObjectID, name string) Stamp {
	return Stamp{ID: id, Name: name}
}

// IsZero reports whether the stamp is unset. Implements bson.Zeroer so
// omitempty works on embedded stamps.
func (s Stamp) IsZero() bool {
	return s.ID.IsZero() && s.Name == ""
}

// Fields carries the audit trail shared by every persisted entity.
// Soft deletes flip IsDeleted and record who and when; the document stays
// in the collection.
type Fields struct {
	CreatedBy Stamp      `bson:"createdBy,omitempty" json:"createdBy,omitzero"`
	UpdatedBy Stamp      `bson:"updatedBy,omitempty" json:"updatedBy,omitzero"`
	DeletedBy Stamp      `bson:"deletedBy,omitempty" json:"deletedBy,omitzero"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	IsDeleted bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// Created initializes the audit trail for a new document.
func Created(actor Stamp, now time.Time) Fields {
	return Fields{
		CreatedBy: actor,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
