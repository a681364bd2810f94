package books

import (
	"net/http"
	"time"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Create handles POST /books. The id, creation timestamp and vote counter
// are server-owned; clients cannot seed them through the payload.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var b models.Book
	if !validate.Body(w, r, &b) {
		return
	}
	b.ID = primitive.NilObjectID
	b.Upvote = 0
	b.CreatedAt = time.Time{}

	id, err := h.Sto.Insert(r.Context(), b)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"data":   map[string]string{"inserted_id": id.Hex()},
	})
}
