package books

import (
	"context"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns every book, unordered.
func (s *Store) List(ctx context.Context) ([]models.Book, error) {
	return s.find(ctx, bson.D{}, nil)
}

// ListByCategory filters on book_category. An empty category matches all
// books, same as the category-less listing.
func (s *Store) ListByCategory(ctx context.Context, category string) ([]models.Book, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "book_category", Value: category}}
	}
	return s.find(ctx, filter, nil)
}

// ListByOwner filters on user_email; empty email matches all.
func (s *Store) ListByOwner(ctx context.Context, email string) ([]models.Book, error) {
	filter := bson.D{}
	if email != "" {
		filter = bson.D{{Key: "user_email", Value: email}}
	}
	return s.find(ctx, filter, nil)
}

// Top returns the n most upvoted books.
func (s *Store) Top(ctx context.Context, n int64) ([]models.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "upvote", Value: -1}}).SetLimit(n)
	return s.find(ctx, bson.D{}, opts)
}

// Recent returns the n most recently created books.
func (s *Store) Recent(ctx context.Context, n int64) ([]models.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(n)
	return s.find(ctx, bson.D{}, opts)
}

func (s *Store) find(ctx context.Context, filter bson.D, opts *options.FindOptions) ([]models.Book, error) {
	cur, err := s.col.Find(ctx, filter, optsOrDefault(opts))
	if err != nil {
		return nil, err
	}

	out := []models.Book{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Book{}
	}
	return out, nil
}

func optsOrDefault(opts *options.FindOptions) *options.FindOptions {
	if opts == nil {
		return options.Find()
	}
	return opts
}
