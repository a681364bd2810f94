package ratings

import (
	"context"
	"time"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/store/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("ratings")}
}

// Insert stores a rating and returns it with the assigned id filled in.
func (s *Store) Insert(ctx context.Context, r models.Rating) (models.Rating, error) {
	r.ID = primitive.NilObjectID
	r.CreatedAt = time.Now().UTC()

	res, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return models.Rating{}, err
	}
	r.ID = res.InsertedID.(primitive.ObjectID)
	return r, nil
}

// List returns every rating, unordered.
func (s *Store) List(ctx context.Context) ([]models.Rating, error) {
	return s.find(ctx, bson.D{})
}

// ListByBook returns ratings whose book_id equals the given hex string.
// There is no referential check against books, so orphaned ratings can
// come back after their book is deleted.
func (s *Store) ListByBook(ctx context.Context, bookID string) ([]models.Rating, error) {
	return s.find(ctx, bson.D{{Key: "book_id", Value: bookID}})
}

// UpdateReview replaces the review text on one rating.
func (s *Store) UpdateReview(ctx context.Context, id primitive.ObjectID, review string) (shared.UpdateCounts, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "review", Value: review}}}},
	)
	if err != nil {
		return shared.UpdateCounts{}, err
	}
	return shared.UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// Delete removes one rating; count 0 for a missing id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) find(ctx context.Context, filter bson.D) ([]models.Rating, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := []models.Rating{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
