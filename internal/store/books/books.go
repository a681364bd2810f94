package books

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the books collection. One value is built in main and handed
// to every handler that touches books.
type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("books")}
}
