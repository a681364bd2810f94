package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating references its book by the hex string form of the book's id;
// the original data set stores book_id as a plain string, not an ObjectID.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID    string             `bson:"book_id" json:"book_id" validate:"required,len=24,hexadecimal"`
	Review    string             `bson:"review,omitempty" json:"review,omitempty" validate:"omitempty,max=5000"`
	Score     int                `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	UserEmail string             `bson:"user_email,omitempty" json:"user_email,omitempty" validate:"omitempty,email"`
	UserName  string             `bson:"user_name,omitempty" json:"user_name,omitempty" validate:"omitempty,max=200"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ReviewUpdate is the PATCH /rating/{id} payload.
type ReviewUpdate struct {
	Review string `json:"review" validate:"required,max=5000"`
}
