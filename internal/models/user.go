package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User mirrors whatever the identity provider gives the frontend; email is
// the natural key (existence checks), not enforced unique by the store.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=200"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	PhotoURL  string             `bson:"photo,omitempty" json:"photo,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
