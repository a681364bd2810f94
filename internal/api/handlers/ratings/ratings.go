package ratings

import (
	"context"
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/store/shared"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store interface {
	Insert(ctx context.Context, r models.Rating) (models.Rating, error)
	List(ctx context.Context) ([]models.Rating, error)
	ListByBook(ctx context.Context, bookID string) ([]models.Rating, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, review string) (shared.UpdateCounts, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type Handler struct {
	Sto Store
}

func NewHandler(sto Store) *Handler {
	return &Handler{Sto: sto}
}

// Create handles POST /ratings and echoes the stored document, assigned
// id included.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var rating models.Rating
	if !validate.Body(w, r, &rating) {
		return
	}

	stored, err := h.Sto.Insert(r.Context(), rating)
	if err != nil {
		apperr.WriteStatus(w, r, http.StatusInternalServerError,
			"Insert Failed", "failed to insert review")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   stored,
	})
}

// List handles GET /ratings.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.Sto.List(r.Context())
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, all)
}

// ByBook handles GET /rating/{bookId}. The book id is matched as the
// stored string; nothing requires the book itself to still exist.
func (h *Handler) ByBook(w http.ResponseWriter, r *http.Request) {
	list, err := h.Sto.ListByBook(r.Context(), r.PathValue("bookId"))
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, list)
}

// UpdateReview handles PATCH /rating/{id}: replaces the review text.
func (h *Handler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	var u models.ReviewUpdate
	if !validate.Body(w, r, &u) {
		return
	}

	counts, err := h.Sto.UpdateReview(r.Context(), id, u.Review)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, map[string]any{
		"matched_count":  counts.Matched,
		"modified_count": counts.Modified,
		"review":         u.Review,
	})
}

// Delete handles DELETE /rating/{id}; count 0 for an unknown id.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	n, err := h.Sto.Delete(r.Context(), id)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, map[string]int64{"deleted_count": n})
}
