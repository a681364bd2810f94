package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reading status values stored in reading_status.
const (
	StatusUnread  = "unread"
	StatusReading = "reading"
	StatusRead    = "read"
)

type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"book_title" json:"book_title" validate:"required,max=300"`
	CoverPhoto    string             `bson:"cover_photo,omitempty" json:"cover_photo,omitempty" validate:"omitempty,url"`
	TotalPage     int                `bson:"total_page,omitempty" json:"total_page,omitempty" validate:"omitempty,gte=0"`
	Author        string             `bson:"book_author,omitempty" json:"book_author,omitempty" validate:"omitempty,max=200"`
	Category      string             `bson:"book_category,omitempty" json:"book_category,omitempty" validate:"omitempty,max=100"`
	OwnerEmail    string             `bson:"user_email" json:"user_email" validate:"required,email"`
	ReadingStatus string             `bson:"reading_status,omitempty" json:"reading_status,omitempty" validate:"omitempty,oneof=unread reading read"`
	// Upvote is only ever changed by the $inc endpoint; absent until the
	// first upvote so fresh documents marshal without the field.
	Upvote    int64     `bson:"upvote,omitempty" json:"upvote,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// BookUpdate is the PUT payload. The full-replace endpoint sets exactly
// these fields and nothing else (never upvote, createdAt or user_email).
type BookUpdate struct {
	Title         string `bson:"book_title" json:"book_title" validate:"required,max=300"`
	CoverPhoto    string `bson:"cover_photo" json:"cover_photo" validate:"omitempty,url"`
	TotalPage     int    `bson:"total_page" json:"total_page" validate:"omitempty,gte=0"`
	Author        string `bson:"book_author" json:"book_author" validate:"omitempty,max=200"`
	Category      string `bson:"book_category" json:"book_category" validate:"omitempty,max=100"`
	ReadingStatus string `bson:"reading_status" json:"reading_status" validate:"omitempty,oneof=unread reading read"`
}

type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}
