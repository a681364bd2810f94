package users

import (
	"context"
	"errors"
	"time"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("users")}
}

// Insert stores a user profile document with a server-assigned creation
// timestamp.
func (s *Store) Insert(ctx context.Context, u models.User) (primitive.ObjectID, error) {
	u.ID = primitive.NilObjectID
	u.CreatedAt = time.Now().UTC()

	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// List returns every user, unordered.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExistsByEmail reports whether any user document carries the email.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
