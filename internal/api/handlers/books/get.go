package books

import (
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/metrics/viewqueue"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Get handles GET /books/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	b, err := h.Sto.GetByID(r.Context(), id)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}

	// Record a view (non-blocking)
	viewqueue.Enqueue(id.Hex())

	httpx.OK(w, b)
}
