package books

import (
	"context"
	"time"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/store/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insert stores a new book. The id, creation timestamp and vote counter
// are server-owned; any values already on b are discarded so the counter
// only ever moves through IncrementUpvote.
func (s *Store) Insert(ctx context.Context, b models.Book) (primitive.ObjectID, error) {
	b.ID = primitive.NilObjectID
	b.Upvote = 0
	b.CreatedAt = time.Now().UTC()

	res, err := s.col.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Replace sets the full editable field set in one $set.
func (s *Store) Replace(ctx context.Context, id primitive.ObjectID, u models.BookUpdate) (shared.UpdateCounts, error) {
	return s.updateOne(ctx, id, bson.D{{Key: "$set", Value: u}})
}

// SetStatus updates reading_status only.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (shared.UpdateCounts, error) {
	return s.updateOne(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "reading_status", Value: status},
	}}})
}

// IncrementUpvote bumps upvote by one. Expressed as $inc so concurrent
// upvotes never lose updates.
func (s *Store) IncrementUpvote(ctx context.Context, id primitive.ObjectID) (shared.UpdateCounts, error) {
	return s.updateOne(ctx, id, bson.D{{Key: "$inc", Value: bson.D{
		{Key: "upvote", Value: 1},
	}}})
}

// Delete removes one book; the count is 0 for a missing id, not an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) updateOne(ctx context.Context, id primitive.ObjectID, update bson.D) (shared.UpdateCounts, error) {
	res, err := s.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return shared.UpdateCounts{}, err
	}
	return shared.UpdateCounts{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
