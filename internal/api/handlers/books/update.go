package books

import (
	"net/http"

	"github.com/bookw0rm/bookshelf-api/internal/api/apperr"
	"github.com/bookw0rm/bookshelf-api/internal/api/httpx"
	"github.com/bookw0rm/bookshelf-api/internal/models"
	"github.com/bookw0rm/bookshelf-api/internal/validate"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Put handles PUT /books/{id}: a full replace of the editable field set.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	var u models.BookUpdate
	if !validate.Body(w, r, &u) {
		return
	}

	counts, err := h.Sto.Replace(r.Context(), id, u)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, counts)
}

type statusPayload struct {
	ReadingStatus string `json:"reading_status" validate:"required,oneof=unread reading read"`
}

// SetStatus handles PATCH /books/status/{id}: reading_status only.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	var p statusPayload
	if !validate.Body(w, r, &p) {
		return
	}

	counts, err := h.Sto.SetStatus(r.Context(), id, p.ReadingStatus)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, counts)
}

// Upvote handles PATCH /books/{id}: bump the vote counter by one. No body;
// the delta is fixed so concurrent upvotes all land.
func (h *Handler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(r.PathValue("id"))
	if err != nil {
		apperr.BadID(w, r)
		return
	}

	counts, err := h.Sto.IncrementUpvote(r.Context(), id)
	if err != nil {
		apperr.WriteStore(w, r, err)
		return
	}
	httpx.OK(w, counts)
}
