package books

import (
	"context"

	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/store/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// How many books the top/recent listings return.
const topN = 6

type Store interface {
	List(ctx context.Context) ([]models.Book, error)
	ListByCategory(ctx context.Context, category string) ([]models.Book, error)
	ListByOwner(ctx context.Context, email string) ([]models.Book, error)
	Top(ctx context.Context, n int64) ([]models.Book, error)
	Recent(ctx context.Context, n int64) ([]models.Book, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)

	Insert(ctx context.Context, b models.Book) (primitive.ObjectID, error)
	Replace(ctx context.Context, id primitive.ObjectID, u models.BookUpdate) (shared.UpdateCounts, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (shared.UpdateCounts, error)
	IncrementUpvote(ctx context.Context, id primitive.ObjectID) (shared.UpdateCounts, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// CoverPresigner hands out one-shot upload URLs for cover images and
// cleans objects up when their book goes away.
type CoverPresigner interface {
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string) (string, error)
	PublicURL(objectKey string) string
	DeleteObject(ctx context.Context, objectKey string) error
}

type Handler struct {
	Sto    Store
	Covers CoverPresigner // nil when cover storage is not configured
}

func NewHandler(sto Store, covers CoverPresigner) *Handler {
	return &Handler{Sto: sto, Covers: covers}
}
